package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/jonathan/mockmate/internal/report"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/jonathan/mockmate/internal/types"
)

// multipartMemory is how much of a multipart body is held in memory before spilling to disk
const multipartMemory = 8 << 20

// SessionResponse is returned when a session is created
type SessionResponse struct {
	ID       string               `json:"id"`
	Profile  *types.ResumeProfile `json:"profile"`
	Metadata *ingestion.Metadata  `json:"metadata"`
	Cached   bool                 `json:"cached"`
}

// QuestionsResponse lists the generated questions of a session
type QuestionsResponse struct {
	SessionID string   `json:"session_id"`
	Questions []string `json:"questions"`
}

// AnswerResponse is the evaluated answer to one question
type AnswerResponse struct {
	Index  int                `json:"index"`
	Record types.AnswerRecord `json:"record"`
	Score  *int               `json:"score,omitempty"`
}

// handleCreateSession ingests an uploaded résumé and opens a session for it
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	data, filename, _, err := s.readUpload(w, r, "file")
	if err != nil {
		s.failed(w, r, err)
		return
	}

	doc, err := ingestion.ParseDocument(filename, data)
	if err != nil {
		s.failed(w, r, err)
		return
	}

	profile, cached := s.profiles.extract(doc)
	session := s.sessions.Create(profile, filename)

	logger.Ctx(r.Context()).Info().
		Str("session", session.ID).
		Str("kind", string(doc.Metadata.Kind)).
		Bool("readable", profile.Readable).
		Bool("cached", cached).
		Msg("session created")

	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		ID:       session.ID,
		Profile:  profile,
		Metadata: doc.Metadata,
		Cached:   cached,
	})
}

// handleGetSession returns a snapshot of a session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failed(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, session.Snapshot())
}

// handleDeleteSession discards a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.failed(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGenerateQuestions asks the language model for a fresh question set
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failed(w, r, err)
		return
	}

	questions, err := s.interviewer.Prepare(r.Context(), session)
	if err != nil {
		s.failed(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, QuestionsResponse{SessionID: session.ID, Questions: questions})
}

// handleAnswer evaluates a typed (JSON) or recorded (multipart "audio") answer
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failed(w, r, err)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.failed(w, r, &ErrValidation{Field: "index", Message: "must be an integer"})
		return
	}

	var record types.AnswerRecord
	if isMultipart(r) {
		data, filename, contentType, uploadErr := s.readUpload(w, r, "audio")
		if uploadErr != nil {
			s.failed(w, r, uploadErr)
			return
		}
		record, err = s.interviewer.AnswerAudio(r.Context(), session, index, speech.NewSample(data, filename, contentType))
	} else {
		req, decodeErr := decodeAnswer(r.Body)
		if decodeErr != nil {
			s.failed(w, r, decodeErr)
			return
		}
		record, err = s.interviewer.AnswerText(r.Context(), session, index, req.Answer)
	}
	if err != nil {
		s.failed(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnswerResponse{
		Index:  index,
		Record: record,
		Score:  interview.ParseScore(record.Feedback),
	})
}

// handleSummary returns the score summary of a session
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failed(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, session.Summary())
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, report.FormatJSON, report.DefaultJSONName)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, report.FormatPDF, report.DefaultPDFName)
}

// writeReport renders the session's answers as a downloadable file
func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, format report.Format, filename string) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failed(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, session.Records()); err != nil {
		s.failed(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Ctx(r.Context()).Warn().Err(err).Msg("failed to write report")
	}
}

// readUpload reads one multipart file field, bounded by the upload limit
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, "", "", wrapBodyError(err, field, "expected a multipart upload")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", "", &ErrValidation{Field: field, Message: "file is required"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", wrapBodyError(err, field, "could not read upload")
	}
	return data, header.Filename, header.Header.Get("Content-Type"), nil
}

// decodeAnswer reads and validates a JSON answer body
func decodeAnswer(body io.Reader) (*types.AnswerRequest, error) {
	var req types.AnswerRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "answer", Message: "answer is required"}
	}
	return &req, nil
}

// wrapBodyError keeps size-limit errors intact so they map to 413
func wrapBodyError(err error, field, message string) error {
	if HTTPStatus(err) == http.StatusRequestEntityTooLarge {
		return err
	}
	return &ErrValidation{Field: field, Message: message}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}
