package drs

import "strings"

// Object ...
type Object struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	SelfURI       string         `json:"self_uri"`
	Size          int64          `json:"size"`
	CreatedTime   string         `json:"created_time"`
	UpdatedTime   string         `json:"updated_time"`
	Version       string         `json:"version"`
	MimeType      string         `json:"mime_type"`
	Description   string         `json:"description"`
	Aliases       []string       `json:"aliases,omitempty"`
	Checksums     []Checksum     `json:"checksums"`
	AccessMethods []AccessMethod `json:"access_methods"`
}

// Checksum ...
type Checksum struct {
	Checksum string `json:"checksum"`
	Type     string `json:"type"`
}

// AccessMethod ...
type AccessMethod struct {
	Type      string     `json:"type"` // s3 gs ftp gsiftp globus htsget https file
	AccessURL *AccessURL `json:"access_url,omitempty"`
	Region    string     `json:"region,omitempty"`
	AccessID  string     `json:"access_id,omitempty"`
}

// AccessURL is both the access_url of an access method and the body
// returned by the access endpoint.
type AccessURL struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// ChecksumMap indexes checksums by algorithm; a later duplicate wins.
func (o *Object) ChecksumMap() map[string]string {
	checksums := make(map[string]string, len(o.Checksums))
	for _, c := range o.Checksums {
		checksums[strings.ToLower(c.Type)] = c.Checksum
	}
	return checksums
}

// SelectAccessMethod returns the first access method of type accessType.
func (o *Object) SelectAccessMethod(accessType string) (*AccessMethod, bool) {
	for i := range o.AccessMethods {
		if o.AccessMethods[i].Type == accessType {
			return &o.AccessMethods[i], true
		}
	}
	return nil, false
}

// FirstURLWithPrefix returns the first access_url starting with prefix, or "".
func (o *Object) FirstURLWithPrefix(prefix string) string {
	for _, am := range o.AccessMethods {
		if am.AccessURL != nil && strings.HasPrefix(am.AccessURL.URL, prefix) {
			return am.AccessURL.URL
		}
	}
	return ""
}
