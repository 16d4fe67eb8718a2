package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
)

// CertificateHandler exposes certificate verification and listing.
type CertificateHandler struct {
	client *client.Client
}

func NewCertificateHandler(c *client.Client) *CertificateHandler {
	return &CertificateHandler{client: c}
}

func (h *CertificateHandler) RegisterTools(s *server.MCPServer) error {
	verify := mcp.NewTool("verify_certificate",
		mcp.WithDescription("Check a certificate by its verification code; returns holder, course and validity"),
		mcp.WithString("code", mcp.Required(), mcp.Description("Verification code printed on the certificate")),
	)
	list := mcp.NewTool("list_certificates",
		mcp.WithDescription("List certificates of the logged-in user (requires a stored session)"),
	)
	s.AddTool(verify, h.handleVerify)
	s.AddTool(list, h.handleList)
	return nil
}

type certificateView struct {
	CertificateNumber string `json:"certificate_number"`
	Student           string `json:"student"`
	Course            string `json:"course"`
	Status            string `json:"status"`
	IssueDate         string `json:"issue_date,omitempty"`
	ExpiryDate        string `json:"expiry_date,omitempty"`
	FinalGrade        string `json:"final_grade,omitempty"`
	Valid             bool   `json:"valid"`
}

func viewOf(c client.Certificate) certificateView {
	v := certificateView{
		CertificateNumber: c.CertificateNumber,
		Student:           c.StudentName,
		Course:            c.CourseTitle,
		Status:            c.Status,
		FinalGrade:        c.FinalGrade,
		Valid:             !c.IsExpired && c.Status != "revoked",
	}
	if c.IssueDate != nil {
		v.IssueDate = c.IssueDate.String()
	}
	if c.ExpiryDate != nil {
		v.ExpiryDate = c.ExpiryDate.String()
	}
	return v
}

func (h *CertificateHandler) handleVerify(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil || code == "" {
		return mcp.NewToolResultError("code is required"), nil
	}

	log.Debug().Str("code", code).Msg("verify_certificate invoked")

	cert, err := h.client.VerifyCertificate(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("verify_certificate failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to verify certificate: %v", err)), nil
	}
	return jsonResult(viewOf(*cert))
}

func (h *CertificateHandler) handleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.client.Session().Authenticated() {
		return mcp.NewToolResultError("not logged in: run `schoolctl login` first"), nil
	}

	log.Debug().Msg("list_certificates invoked")

	certs, err := h.client.GetMyCertificates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list_certificates failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list certificates: %v", err)), nil
	}
	out := make([]certificateView, len(certs))
	for i, c := range certs {
		out[i] = viewOf(c)
	}
	return jsonResult(out)
}
