package modelclient

import (
	"context"
	"errors"
	"strings"

	"gemini-chat/internal/model"
	"gemini-chat/pkg/gemini"
	pkgLog "gemini-chat/pkg/log"
)

// Generator is the part of the Gemini client the Model Client depends on.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// Client turns a user message plus prior turns into one generateContent call.
// It is safe for concurrent use: it holds no per-conversation state.
type Client struct {
	llm Generator
	l   pkgLog.Logger
}

// New creates a Model Client.
func New(llm Generator, l pkgLog.Logger) *Client {
	return &Client{llm: llm, l: l}
}

// Generate sends one request and returns the reply together with the updated
// history. On success the history is a new slice holding the input turns, the
// user message and the reply; on failure it is a copy of the input turns.
// The caller's slice is never modified. No retries are attempted.
func (c *Client) Generate(ctx context.Context, req Request) (Reply, []model.Turn) {
	resp, err := c.llm.GenerateContent(ctx, BuildRequest(req))
	if err != nil {
		reply := Reply{Err: classify(err)}
		c.l.Warnf(ctx, "internal.modelclient.Generate: model=%s kind=%s err=%v", c.llm.Model(), reply.Err.Kind, err)
		return reply, model.CopyTurns(req.History)
	}

	text, ok := resp.FirstText()
	if !ok || strings.TrimSpace(text) == "" {
		c.l.Warnf(ctx, "internal.modelclient.Generate: model=%s returned no text", c.llm.Model())
		return Reply{Err: &ReplyError{Kind: KindEmpty, Message: "empty response"}}, model.CopyTurns(req.History)
	}

	updated := make([]model.Turn, 0, len(req.History)+2)
	updated = append(updated, req.History...)
	updated = append(updated,
		model.Turn{Role: model.RoleUser, Text: req.Message},
		model.Turn{Role: model.RoleAssistant, Text: text},
	)

	if resp.UsageMetadata != nil {
		c.l.Debugf(ctx, "internal.modelclient.Generate: model=%s prompt_tokens=%d reply_tokens=%d",
			c.llm.Model(), resp.UsageMetadata.PromptTokenCount, resp.UsageMetadata.CandidatesTokenCount)
	}

	return Reply{Text: text}, updated
}

// BuildRequest lays out the payload: the instruction as a leading system turn,
// the history in endpoint roles, then the new message as the final user turn.
func BuildRequest(req Request) gemini.GenerateRequest {
	contents := make([]gemini.Content, 0, len(req.History)+2)

	if req.Instruction != "" {
		contents = append(contents, textContent(gemini.RoleSystem, req.Instruction))
	}
	for _, t := range req.History {
		contents = append(contents, textContent(RoleFor(t.Role), t.Text))
	}
	contents = append(contents, textContent(gemini.RoleUser, req.Message))

	return gemini.GenerateRequest{
		Contents:         contents,
		GenerationConfig: &gemini.GenerationConfig{Temperature: req.Temperature},
	}
}

// RoleFor maps a conversation role to the endpoint's vocabulary.
// user stays user; every other role, known or not, becomes model.
func RoleFor(r model.Role) string {
	if model.NormalizeRole(string(r)) == model.RoleUser {
		return gemini.RoleUser
	}
	return gemini.RoleModel
}

func textContent(role, text string) gemini.Content {
	return gemini.Content{Role: role, Parts: []gemini.Part{{Text: text}}}
}

func classify(err error) *ReplyError {
	var apiErr *gemini.APIError
	switch {
	case errors.As(err, &apiErr):
		return &ReplyError{Kind: KindStatus, Message: apiErr.Error(), StatusCode: apiErr.StatusCode}
	case errors.Is(err, gemini.ErrDecode):
		return &ReplyError{Kind: KindDecode, Message: err.Error()}
	default:
		return &ReplyError{Kind: KindTransport, Message: err.Error()}
	}
}
