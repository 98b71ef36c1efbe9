package webhook

import (
	"context"
	"fmt"

	"github.com/google/go-github/v74/github"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// CommentSource is the slice of the issue tracker the handlers append to.
type CommentSource interface {
	CreateComment(ctx context.Context, number int, body string) error
}

// IssueGreeter thanks the author whenever an issue is opened.
type IssueGreeter struct {
	logger providers.Logger
	source CommentSource
}

func NewIssueGreeter(logger providers.Logger, source CommentSource) *IssueGreeter {
	return &IssueGreeter{logger: logger, source: source}
}

func (g *IssueGreeter) Handle(ctx context.Context, payload any) error {
	ev, ok := payload.(*github.IssuesEvent)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for issues event", payload)
	}

	number := ev.GetIssue().GetNumber()
	author := ev.GetSender().GetLogin()
	body := fmt.Sprintf("Hi @%s, thanks for opening this issue! Someone from the team will take a look soon.", author)

	if err := g.source.CreateComment(ctx, number, body); err != nil {
		return err
	}
	g.logger.Infof(providers.TypeHook, "Greeted @%s on issue #%d", author, number)
	return nil
}
