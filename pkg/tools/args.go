package tools

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/cohesivestack/valgo"
	"github.com/mark3labs/mcp-go/mcp"
)

/*
Navigator is the browser collaborator the URL bound tools depend on. It
returns the HTML of the page once client side rendering has settled.
*/
type Navigator interface {
	Navigate(ctx context.Context, url string) (string, error)
}

const errURLRequired = "url parameter is required"

// requireURL reads the url argument, reporting false when it is missing or blank.
func requireURL(req mcp.CallToolRequest) (string, bool) {
	url, _ := req.GetArguments()["url"].(string)

	val := valgo.Is(valgo.String(url, "url").Not().Blank())

	if !val.Valid() {
		log.Warn("rejected tool arguments", "tool", req.Params.Name, "error", val.Error())
		return "", false
	}

	return url, true
}
