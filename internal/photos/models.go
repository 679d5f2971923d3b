package photos

// UploadCandidate is one upload as handed over by the caller, before any
// validation or encoding has happened. It lives for a single Upload call.
type UploadCandidate struct {
	Data     []byte `json:"-"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// EncodedVariant is the encoder output for one variant spec. It is handed
// straight to the storage backend and never retained.
type EncodedVariant struct {
	Name        string
	Bytes       []byte
	ContentType string
	Ext         string
}

// StoredAssetSet is the durable result of one upload: every stored variant
// URL plus the one URL callers should persist as the display default.
type StoredAssetSet struct {
	URLs       map[string]string `json:"urls"`
	PrimaryURL string            `json:"primaryUrl"`
}
