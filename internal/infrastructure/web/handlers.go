package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nomi00700/agno-multi-agent/internal/agents"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/input"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/application/usecase"
	"github.com/nomi00700/agno-multi-agent/internal/dataset"
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 10 << 20

type Handler struct {
	dispatcher input.Dispatcher
	table      agents.Table
	logger     output.LoggerPort
	timeout    time.Duration
}

func NewHandler(dispatcher input.Dispatcher, table agents.Table, logger output.LoggerPort, timeout time.Duration) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		table:      table,
		logger:     logger,
		timeout:    timeout,
	}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, pageData{Agents: h.agentOptions(entity.AgentNewsAnalyst)})
}

func (h *Handler) handleResearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderPage(w, pageData{
			Agents: h.agentOptions(entity.AgentNewsAnalyst),
			Error:  "Could not read the submitted form: " + err.Error(),
		})
		return
	}

	kind, err := entity.ParseAgentKind(r.FormValue("agent"))
	if err != nil {
		h.renderPage(w, pageData{
			Agents: h.agentOptions(entity.AgentNewsAnalyst),
			Error:  "Please choose one of the listed agents.",
		})
		return
	}

	topic := r.FormValue("topic")
	page := pageData{Agents: h.agentOptions(kind), Topic: topic}

	ds, notice, err := h.readDataset(r)
	if err != nil {
		page.Error = err.Error()
		h.renderPage(w, page)
		return
	}
	page.Notice = notice

	// The dispatch runs under the request context so closing the page
	// cancels outbound calls; the timeout bounds a stuck upstream.
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.dispatcher.Dispatch(ctx, entity.ResearchRequest{
		Agent:   kind,
		Topic:   topic,
		Dataset: ds,
	})
	if err != nil {
		page.Error = userMessage(err)
		h.renderPage(w, page)
		return
	}

	html, err := renderMarkdown(result.Markdown)
	if err != nil {
		h.logger.Error("Markdown rendering failed", "error", err)
		page.Error = "The agent answered, but the answer could not be rendered."
		h.renderPage(w, page)
		return
	}

	profile, _ := h.table.Get(kind)
	page.Result = &resultView{
		AgentName:  profile.DisplayName,
		HTML:       html,
		Iterations: result.Iterations,
		Duration:   result.Duration.Round(time.Millisecond).String(),
		RequestID:  result.RequestID,
	}
	h.renderPage(w, page)
}

// readDataset parses an optional CSV upload. A missing file is not an error;
// a present but broken file is.
func (h *Handler) readDataset(r *http.Request) (*entity.Dataset, string, error) {
	file, header, err := r.FormFile("dataset")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not read the uploaded file: %w", err)
	}
	defer file.Close()

	ds, err := dataset.ParseCSV(file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrNoRows):
			return nil, "", errors.New("the CSV file contains no data rows")
		case errors.Is(err, dataset.ErrNoColumns):
			return nil, "", errors.New("the CSV file has no columns")
		default:
			return nil, "", fmt.Errorf("error processing CSV file: %w", err)
		}
	}

	notice := fmt.Sprintf("Successfully uploaded CSV with %d rows and %d columns", ds.RowCount(), ds.ColumnCount())
	return ds, notice, nil
}

// userMessage maps dispatch errors to the inline banner text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrEmptyTopic):
		return "Please enter a topic first."
	case errors.Is(err, usecase.ErrDatasetRequired):
		return "Please upload a CSV file first for data analysis."
	case errors.Is(err, context.DeadlineExceeded):
		return "The research request timed out. Please try again."
	default:
		return "Error: " + err.Error()
	}
}

func (h *Handler) handleSampleCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_air_quality.csv"`)
	w.Write([]byte(sampleCSV))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("Template execution failed", "error", err)
	}
}

func (h *Handler) agentOptions(selected entity.AgentKind) []agentOption {
	profiles := h.table.Ordered()
	options := make([]agentOption, 0, len(profiles))
	for _, p := range profiles {
		options = append(options, agentOption{
			Value:    p.Kind.String(),
			Label:    p.DisplayName,
			Selected: p.Kind == selected,
		})
	}
	return options
}
