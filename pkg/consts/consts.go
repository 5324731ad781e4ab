package consts

import "time"

type AccessType string

const (
	AccessTypeGS    AccessType = "gs"
	AccessTypeS3    AccessType = "s3"
	AccessTypeHTTPS AccessType = "https"
)

type ManifestFormat string

const (
	ManifestFormatGetm ManifestFormat = "getm"
	ManifestFormatTNU  ManifestFormat = "tnu"
)

const (
	DRSScheme = "drs://"
	GSPrefix  = "gs://"
	S3Prefix  = "s3://"
)

const (
	DRSObjectsPath = "/ga4gh/drs/v1/objects"
	BondLinkPath   = "/api/link/v1"
)

const DefaultBondHost = "broad-bond-prod.appspot.com"

const DefaultIdentityCommand = "gcloud auth application-default print-access-token"

const DefaultWorkDir = "/cromwell_root"

const DefaultConcurrency = 4

const DefaultFileMode = 0777

const CheckerTypeMD5 = "md5"

const (
	ErrCodeExceedAccountQPSLimit  = "ExceedAccountQPSLimit"
	ErrCodeExceedAccountRateLimit = "ExceedAccountRateLimit"
	ErrCodeExceedBucketQPSLimit   = "ExceedBucketQPSLimit"
	ErrCodeExceedBucketRateLimit  = "ExceedBucketRateLimit"
	ErrCodeSlowDown               = "SlowDown"
)

var ErrCodeRateLimitList = []string{ErrCodeExceedAccountQPSLimit, ErrCodeExceedAccountRateLimit, ErrCodeExceedBucketQPSLimit, ErrCodeExceedBucketRateLimit, ErrCodeSlowDown}

const (
	DefaultMinBandwidth = 1024 * 1024       // 1MB/s
	DefaultMaxBandwidth = 128 * 1024 * 1024 // 128MB/s = 1Gbps, consider this as no limit
)

const DefaultCredentialExpiryWindow = time.Minute

const (
	DefaultRetryCount = 5
	DefaultPartSize   = 64 * 1024 * 1024 // 64MiB
)
