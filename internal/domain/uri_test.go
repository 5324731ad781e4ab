package domain

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestObjectIDOf(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{uri: "drs://dg.4503:abc123", expected: "abc123"},
		{uri: "drs://dg.ANV0:dg.ANV0/0db6577e", expected: "dg.ANV0/0db6577e"},
		{uri: "drs://dg.4DFC:ddacaa74-97a9-4a0e-aa36-3e65fc8382d5", expected: "ddacaa74-97a9-4a0e-aa36-3e65fc8382d5"},
		{uri: "drs://dg.TEST/obj-1", expected: "obj-1"},
		{uri: "drs://plain", expected: "plain"},
	}

	for _, tc := range tests {
		convey.Convey(tc.uri, t, func() {
			convey.So(ObjectIDOf(tc.uri), convey.ShouldEqual, tc.expected)
		})
	}
}

func TestLocalDirName(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{uri: "drs://dg.4503:abc123", expected: "dg.4503_abc123"},
		{uri: "drs://dg.ANV0:dg.ANV0/0db6577e", expected: "dg.ANV0_dg.ANV0_0db6577e"},
		{uri: "drs://host/a/b", expected: "host_a_b"},
	}

	for _, tc := range tests {
		convey.Convey(tc.uri, t, func() {
			convey.So(LocalDirName(tc.uri), convey.ShouldEqual, tc.expected)
		})
	}
}

func TestValidateDRSURI(t *testing.T) {
	convey.Convey("validate drs uri", t, func() {
		convey.So(ValidateDRSURI("drs://dg.4503:abc"), convey.ShouldBeNil)
		convey.So(ValidateDRSURI("drs://"), convey.ShouldNotBeNil)
		convey.So(ValidateDRSURI("https://host/abc"), convey.ShouldNotBeNil)
	})
}
