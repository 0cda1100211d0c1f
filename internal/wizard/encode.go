package wizard

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"errors"

	ledongpdf "github.com/ledongthuc/pdf"

	"careers-portal/internal/shared/telemetry"
)

const (
	maxResumeSize = 5 * 1024 * 1024

	mimePDF  = "application/pdf"
	mimeDoc  = "application/msword"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func allowedResumeMime(mimeType string) bool {
	switch mimeType {
	case mimePDF, mimeDoc, mimeDocx:
		return true
	}
	return false
}

// UploadResume validates the selected file synchronously and, if accepted,
// starts an asynchronous encode. A rejected file clears any previously
// accepted attachment. A new upload supersedes any encode still in flight.
func (s *Service) UploadResume(id, fileName, mimeType string, data []byte) (View, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	if !allowedResumeMime(mimeType) {
		sess.Attachment = nil
		sess.EncodeError = ""
		view := sess.view()
		sess.mu.Unlock()
		return view, &ValidationError{Fields: []FieldError{
			{Field: "resume", Message: "You can only upload PDF or DOC/DOCX files!"},
		}}
	}
	if int64(len(data)) >= maxResumeSize {
		sess.Attachment = nil
		sess.EncodeError = ""
		view := sess.view()
		sess.mu.Unlock()
		return view, &ValidationError{Fields: []FieldError{
			{Field: "resume", Message: "File must be smaller than 5MB!"},
		}}
	}

	sess.Encoding = true
	sess.Attachment = nil
	sess.EncodeError = ""
	sess.encodeToken++
	token := sess.encodeToken
	view := sess.view()
	sess.mu.Unlock()

	s.spawn(func() {
		s.finishEncode(sess, token, fileName, mimeType, data)
	})
	return view, nil
}

// RemoveResume clears the attachment. Bumping the token discards the
// result of any encode still running for a previous selection.
func (s *Service) RemoveResume(id string) (View, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.encodeToken++
	sess.Encoding = false
	sess.Attachment = nil
	sess.EncodeError = ""
	return sess.view(), nil
}

func (s *Service) finishEncode(sess *Session, token uint64, fileName, mimeType string, data []byte) {
	att, encErr := encodeResume(fileName, mimeType, data)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if token != sess.encodeToken {
		// A newer selection superseded this encode.
		return
	}
	sess.Encoding = false
	if encErr != nil {
		sess.Attachment = nil
		sess.EncodeError = encErr.Error()
		telemetry.Warn("wizard.resume.encode_failed", map[string]any{
			"sessionId": sess.ID,
			"fileName":  fileName,
			"error":     encErr.Error(),
		})
		return
	}
	sess.Attachment = att
}

func encodeResume(fileName, mimeType string, data []byte) (*Attachment, error) {
	if len(data) == 0 {
		return nil, errors.New("Unable to read file content.")
	}
	att := &Attachment{
		FileName: fileName,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Content:  base64.StdEncoding.EncodeToString(data),
	}
	if mimeType == mimePDF {
		att.Pages = pdfPageCount(data)
	}
	if mimeType == mimeDocx && !looksLikeZip(data) {
		// DOCX content is transported opaquely; a malformed container
		// still attaches.
		telemetry.Warn("wizard.resume.docx_not_zip", map[string]any{"fileName": fileName})
	}
	return att, nil
}

// looksLikeZip reports whether data opens as a zip container, which every
// real DOCX is.
func looksLikeZip(data []byte) bool {
	_, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	return err == nil
}

// pdfPageCount inspects an uploaded PDF for its page count. Inspection is
// best-effort: an unreadable PDF is still a valid attachment, so failures
// only log and report zero pages.
func pdfPageCount(data []byte) (pages int) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("wizard.resume.pdf_inspect_panic", map[string]any{"reason": r})
			pages = 0
		}
	}()
	reader, err := ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		telemetry.Warn("wizard.resume.pdf_inspect_failed", map[string]any{"error": err.Error()})
		return 0
	}
	return reader.NumPage()
}
