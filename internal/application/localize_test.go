package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/mock"
)

func TestLocalizeCmd_Localize(t *testing.T) {
	entries := []*domain.ManifestEntry{
		{URL: "https://signed/a", Filepath: "/w/a", ChecksumAlgorithm: "md5"},
		{URL: "https://signed/b", Filepath: "/w/b", ChecksumAlgorithm: "md5"},
	}

	tests := []struct {
		name      string
		entries   []*domain.ManifestEntry
		readErr   error
		localErr  error
		expectErr bool
	}{
		{
			name:    "every entry is localized",
			entries: entries,
		},
		{
			name:    "empty manifest",
			entries: []*domain.ManifestEntry{},
		},
		{
			name:      "manifest cannot be read",
			readErr:   errors.New("not found"),
			expectErr: true,
		},
		{
			name:      "download failure",
			entries:   entries,
			localErr:  errors.New("md5 mismatch"),
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockManifestRepo(ctrl)
			repo.EXPECT().Read(gomock.Any(), "m.json").Return(tc.entries, tc.readErr)
			localizer := mock.NewMockLocalizer(ctrl)
			localizer.EXPECT().Localize(gomock.Any(), gomock.Any()).Return(tc.localErr).MaxTimes(len(tc.entries))

			cmd, err := NewLocalizeCmd(&Config{Concurrency: 2}, repo, localizer, log.NewNopLogger())
			convey.So(err, convey.ShouldBeNil)

			err = cmd.Localize(context.Background(), "m.json")
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}
