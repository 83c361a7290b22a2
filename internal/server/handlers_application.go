package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/sequencer"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// handleNextQuestion serves the next question for an in-progress application.
// Generation failures are invisible to the candidate: the deterministic
// question bank answers instead, and as a last resort the default name
// question is served so the flow always has an input control.
func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	var req types.NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Role.IsValid() {
		err := &ErrValidation{Field: "role", Message: "unknown role"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := types.ValidateAnswers(req.Answers); err != nil {
		verr := &ErrValidation{Field: "answers", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	// The provider is instructed to stop after six answers, but that is not
	// trusted; the cap is enforced here.
	if len(req.Answers) >= sequencer.TotalSteps {
		s.jsonResponse(w, http.StatusOK, types.NextQuestionResponse{
			Completed: true,
			Message:   types.CompletionMessage,
		})
		return
	}

	if s.provider != nil {
		outcome, err := s.provider.Next(r.Context(), req.Role, req.Answers)
		if err == nil {
			if outcome.Completed {
				s.jsonResponse(w, http.StatusOK, types.NextQuestionResponse{
					Completed: true,
					Message:   outcome.Message,
				})
			} else {
				s.jsonResponse(w, http.StatusOK, types.NextQuestionResponse{
					Question: outcome.Question,
				})
			}
			return
		}
		log.Printf("[next-question] generation failed for %s, using question bank: %v", req.Role, err)
	}

	question, ok := sequencer.NextFallback(req.Role, types.AnsweredKeys(req.Answers))
	if !ok {
		s.jsonResponse(w, http.StatusOK, types.NextQuestionResponse{
			Completed: true,
			Message:   types.CompletionMessage,
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, types.NextQuestionResponse{Question: &question})
}

// handleSubmitApplication persists a finished application with a single insert.
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Role.IsValid() {
		err := &ErrValidation{Field: "role", Message: "unknown role"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if len(req.Answers) == 0 {
		err := &ErrValidation{Field: "answers", Message: "at least one answer is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := types.ValidateAnswers(req.Answers); err != nil {
		verr := &ErrValidation{Field: "answers", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	app, err := s.store.CreateApplication(r.Context(), req.Role, req.Answers)
	if err != nil {
		serr := &ErrSubmission{Cause: err}
		log.Printf("[applications] %v", serr)
		s.errorResponse(w, HTTPStatus(serr), "Failed to store application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.SubmitApplicationResponse{
		Success: true,
		ID:      app.ID,
	})
}
