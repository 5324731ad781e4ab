package identity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/smartystreets/goconvey/convey"

	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/mock"
)

func TestCommandSource_Token(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		expected  string
		expectErr bool
	}{
		{
			name:     "token printed on stdout",
			command:  "echo '  ya29.token  '",
			expected: "ya29.token",
		},
		{
			name:      "command fails",
			command:   "echo nope >&2; exit 3",
			expectErr: true,
		},
		{
			name:      "empty output",
			command:   "true",
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			source, err := NewCommandSource(&Config{Command: tc.command}, log.NewNopLogger())
			convey.So(err, convey.ShouldBeNil)

			token, err := source.Token(context.Background())
			if tc.expectErr {
				convey.So(apperror.IsCode(err, apperror.ErrIdentityToken), convey.ShouldBeTrue)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(token, convey.ShouldEqual, tc.expected)
			}
		})
	}
}

func TestCachedSource_SingleFlight(t *testing.T) {
	convey.Convey("concurrent first use acquires the token once", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delegate := mock.NewMockSource(ctrl)
		delegate.EXPECT().Token(gomock.Any()).DoAndReturn(func(_ context.Context) (string, error) {
			time.Sleep(50 * time.Millisecond)
			return "user-token", nil
		}).Times(1)

		cached := NewCachedSource(delegate)
		const workers = 16
		tokens := make([]string, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tokens[i], errs[i] = cached.Token(context.Background())
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			convey.So(errs[i], convey.ShouldBeNil)
			convey.So(tokens[i], convey.ShouldEqual, "user-token")
		}

		token, err := cached.Token(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(token, convey.ShouldEqual, "user-token")
	})

	convey.Convey("a failed acquisition is not retried", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delegate := mock.NewMockSource(ctrl)
		delegate.EXPECT().Token(gomock.Any()).Return("", fmt.Errorf("gcloud not installed")).Times(1)

		cached := NewCachedSource(delegate)
		_, err := cached.Token(context.Background())
		convey.So(err, convey.ShouldNotBeNil)
		_, err = cached.Token(context.Background())
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestCachedSource_CanceledCaller(t *testing.T) {
	convey.Convey("a canceled first caller does not fix the outcome", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delegate := mock.NewMockSource(ctrl)
		gomock.InOrder(
			delegate.EXPECT().Token(gomock.Any()).DoAndReturn(func(ctx context.Context) (string, error) {
				return "", ctx.Err()
			}),
			delegate.EXPECT().Token(gomock.Any()).Return("user-token", nil),
		)

		cached := NewCachedSource(delegate)
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := cached.Token(canceled)
		convey.So(err, convey.ShouldEqual, context.Canceled)

		token, err := cached.Token(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(token, convey.ShouldEqual, "user-token")

		token, err = cached.Token(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(token, convey.ShouldEqual, "user-token")
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("default command is valid", t, func() {
		convey.So(NewConfig().Validate(), convey.ShouldBeNil)
	})
	convey.Convey("blank command is invalid", t, func() {
		convey.So((&Config{Command: "  "}).Validate(), convey.ShouldNotBeNil)
	})
}
