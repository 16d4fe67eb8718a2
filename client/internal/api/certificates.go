package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const (
	CertificatesPath = "/certifications/certificates/"
	VerifyPath       = "/certifications/certificates/verify/"
)

// ListCertificates lists the certificates visible to the caller.
func ListCertificates(ctx context.Context, r Requester) ([]types.Certificate, error) {
	return listOf[types.Certificate](ctx, r, CertificatesPath)
}

// VerifyCertificate looks a certificate up by its public verification code.
func VerifyCertificate(ctx context.Context, r Requester, code string) (*types.Certificate, error) {
	var c types.Certificate
	if err := getInto(ctx, r, WithQuery(VerifyPath, Params{"code": code}), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
