package commands

import (
	"errors"

	listview "github.com/goliatone/go-listview/components/listview"
)

// ListInput identifies the list session a command acts on.
type ListInput struct {
	Viewer listview.ViewerContext `json:"viewer"`
	List   string                 `json:"list"`
}

func (in ListInput) validate(command string) error {
	if in.List == "" {
		return errors.New(command + " command requires list code")
	}
	return nil
}

func (in ListInput) payload(extra map[string]any) map[string]any {
	out := map[string]any{
		"list":    in.List,
		"user_id": in.Viewer.UserID,
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
