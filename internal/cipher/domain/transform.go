package domain

// TransformInput is one request to the transform dispatcher.
//
// Text is read in Text mode. Data is read in Binary mode: plain bytes when encrypting,
// a Container frame when decrypting. Filename names the source file of a binary
// encryption and is stored in the frame.
type TransformInput struct {
	Kind      Kind
	Direction Direction
	Mode      Mode
	Key       KeyMaterial
	Text      string
	Data      []byte
	Filename  string
}

// PayloadSize returns the size in bytes of the payload selected by Mode.
func (i *TransformInput) PayloadSize() int {
	if i.Mode == Binary {
		return len(i.Data)
	}
	return len(i.Text)
}

// TransformOutput is the result of a successful transform.
//
// Text mode fills Text. Binary mode fills Data (a Container frame after encryption,
// the recovered bytes after decryption), the sanitized original Filename and the
// suggested DownloadName.
type TransformOutput struct {
	Kind           Kind
	Direction      Direction
	Mode           Mode
	Text           string
	Data           []byte
	Filename       string
	DownloadName   string
	KeyFingerprint string
}
