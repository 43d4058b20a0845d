package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleHome describes the available endpoints
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Simple AI Resume Builder",
		"endpoints": map[string]string{
			"/generate":     "POST - Generate resume text",
			"/generate-pdf": "POST - Generate and download PDF resume",
		},
	})
}

// handleGenerate generates resume text only
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeResumeRequest(w, r)
	if !ok {
		return
	}

	resume, err := s.generateResume(r.Context(), req)
	if err != nil {
		log.Printf("Resume generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to generate resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{Resume: resume, Success: true})
}

// handleGeneratePDF generates a resume and returns it as a PDF attachment
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeResumeRequest(w, r)
	if !ok {
		return
	}

	resume, err := s.generateResume(r.Context(), req)
	if err != nil {
		log.Printf("Resume generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to generate resume")
		return
	}

	doc := layout.Format(resume)
	pdf, err := rendering.RenderPDF(doc)
	if err != nil {
		log.Printf("PDF rendering failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := strings.ReplaceAll(req.Name, " ", "_") + "_resume.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleTest verifies connectivity to the completion endpoint
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	if err := s.llmClient.Ping(r.Context()); err != nil {
		log.Printf("API connectivity test failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "API connection failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TestResponse{
		Status: "API connection successful!",
		Model:  s.llmClient.Model(),
	})
}

// decodeResumeRequest decodes and validates the request body. Validation
// failures are rejected before any outbound completion call is made.
func (s *Server) decodeResumeRequest(w http.ResponseWriter, r *http.Request) (types.ResumeRequest, bool) {
	var req types.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Name and email are required")
		return req, false
	}

	return req, true
}

// generateResume runs the prompt -> completion pipeline for one request
func (s *Server) generateResume(ctx context.Context, req types.ResumeRequest) (string, error) {
	prompt := prompts.BuildResumePrompt(req)
	return s.llmClient.Complete(ctx, prompt)
}
