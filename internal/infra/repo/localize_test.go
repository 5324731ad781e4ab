package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/checker"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/mock"
)

func newTestLocalizer(trans *mock.MockTransput, fileChecker *mock.MockChecker) *localizerRepo {
	factory := newTransputFactory(&Config{})
	factory.transputMap.Store("https", trans)
	return &localizerRepo{
		transputFactory: factory,
		newChecker:      func(string) checker.Checker { return fileChecker },
		attempts:        1,
		logger:          log.NewNopLogger(),
	}
}

func TestLocalizerRepo_Localize(t *testing.T) {
	convey.Convey("download then verify", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entry := &domain.ManifestEntry{
			URL:               "https://signed/f.bam",
			Checksum:          "6cd3556deb0da54bca060b4c39479839",
			ChecksumAlgorithm: "md5",
			Filepath:          filepath.Join(t.TempDir(), "f.bam"),
			DRSURI:            "drs://dg.4503:abc",
		}
		trans := mock.NewMockTransput(ctrl)
		fileChecker := mock.NewMockChecker(ctrl)
		trans.EXPECT().DownloadFile(gomock.Any(), entry.Filepath, entry.URL).DoAndReturn(func(_ context.Context, local, _ string) error {
			return os.WriteFile(local, []byte("Hello, world!"), 0644)
		})
		fileChecker.EXPECT().Check(entry.Filepath).Return(true, nil)

		convey.So(newTestLocalizer(trans, fileChecker).Localize(context.Background(), entry), convey.ShouldBeNil)
	})

	convey.Convey("checksum mismatch removes the file", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entry := &domain.ManifestEntry{
			URL:               "https://signed/f.bam",
			Checksum:          "00000000000000000000000000000000",
			ChecksumAlgorithm: "md5",
			Filepath:          filepath.Join(t.TempDir(), "f.bam"),
		}
		trans := mock.NewMockTransput(ctrl)
		fileChecker := mock.NewMockChecker(ctrl)
		trans.EXPECT().DownloadFile(gomock.Any(), entry.Filepath, entry.URL).DoAndReturn(func(_ context.Context, local, _ string) error {
			return os.WriteFile(local, []byte("corrupted"), 0644)
		})
		fileChecker.EXPECT().Check(entry.Filepath).Return(false, nil).Times(1)

		err := newTestLocalizer(trans, fileChecker).Localize(context.Background(), entry)
		convey.So(err, convey.ShouldNotBeNil)
		_, statErr := os.Stat(entry.Filepath)
		convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
	})

	convey.Convey("existing verified file is skipped", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entry := &domain.ManifestEntry{
			URL:               "https://signed/f.bam",
			Checksum:          "6cd3556deb0da54bca060b4c39479839",
			ChecksumAlgorithm: "md5",
			Filepath:          filepath.Join(t.TempDir(), "f.bam"),
		}
		convey.So(os.WriteFile(entry.Filepath, []byte("Hello, world!"), 0644), convey.ShouldBeNil)
		fileChecker := mock.NewMockChecker(ctrl)
		fileChecker.EXPECT().Check(entry.Filepath).Return(true, nil)

		convey.So(newTestLocalizer(mock.NewMockTransput(ctrl), fileChecker).Localize(context.Background(), entry), convey.ShouldBeNil)
	})

	convey.Convey("download failure", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entry := &domain.ManifestEntry{
			URL:               "https://signed/f.bam",
			Checksum:          "6cd3556deb0da54bca060b4c39479839",
			ChecksumAlgorithm: "md5",
			Filepath:          filepath.Join(t.TempDir(), "f.bam"),
		}
		trans := mock.NewMockTransput(ctrl)
		trans.EXPECT().DownloadFile(gomock.Any(), entry.Filepath, entry.URL).Return(errors.New("download file error with status code: 403"))

		err := newTestLocalizer(trans, mock.NewMockChecker(ctrl)).Localize(context.Background(), entry)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "403")
	})

	convey.Convey("unsupported algorithm", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entry := &domain.ManifestEntry{ChecksumAlgorithm: "sha256"}
		err := newTestLocalizer(mock.NewMockTransput(ctrl), mock.NewMockChecker(ctrl)).Localize(context.Background(), entry)
		convey.So(apperror.IsCode(err, apperror.ErrInvalidArgument), convey.ShouldBeTrue)
	})
}

func TestTransputFactory_NewTransput(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{name: "https", url: "https://signed/f.bam"},
		{name: "http shares the https transput", url: "http://localhost/f.bam"},
		{name: "ftp is not supported", url: "ftp://host/f.bam", expectErr: true},
		{name: "gs is not directly downloadable", url: "gs://bucket/f.bam", expectErr: true},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			factory := newTransputFactory(&Config{})
			trans, err := factory.NewTransput(tc.url)
			if tc.expectErr {
				convey.So(apperror.IsCode(err, apperror.ErrInvalidArgument), convey.ShouldBeTrue)
			} else {
				convey.So(err, convey.ShouldBeNil)
				again, err := factory.NewTransput("https://other/x")
				convey.So(err, convey.ShouldBeNil)
				convey.So(again, convey.ShouldEqual, trans)
			}
		})
	}
}
