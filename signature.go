package godeck

import "time"

// SignatureInfo emits the digital-signature metadata parts
// (_xmlsignatures/origin.sigs and sig1.xml). No cryptographic signature is
// computed; the parts record the signer so readers show a signature line.
type SignatureInfo struct {
	SignerName string
	Purpose    string
	SignedAt   time.Time // zero value serializes as the package sentinel time
}

func (s *SignatureInfo) validate() error {
	if s.SignerName == "" {
		return newError(ErrInvalidInput, "signature needs a signer name")
	}
	return nil
}
