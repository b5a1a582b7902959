package registry

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
)

func noop(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("ok"), nil
}

func TestRegisterTool(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		r := NewRegistry()

		r.RegisterTool(ToolDefinition{Tool: mcp.NewTool("hallo"), Handler: noop})

		Convey("Then the tool can be retrieved", func() {
			got, ok := r.GetToolDefinition("hallo")
			So(ok, ShouldBeTrue)
			So(got.Name(), ShouldEqual, "hallo")
			So(got.Handler, ShouldNotBeNil)
		})

		Convey("Then an unknown tool is not found", func() {
			_, ok := r.GetToolDefinition("missing")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestList(t *testing.T) {
	Convey("Given a registry with several tools", t, func() {
		r := NewRegistry()

		for _, name := range []string{"yamap_plan", "hallo", "fetch_html"} {
			r.RegisterTool(ToolDefinition{Tool: mcp.NewTool(name), Handler: noop})
		}

		Convey("When listing", func() {
			defs := r.List()

			Convey("Then they come back sorted by name", func() {
				So(defs, ShouldHaveLength, 3)
				So(defs[0].Name(), ShouldEqual, "fetch_html")
				So(defs[1].Name(), ShouldEqual, "hallo")
				So(defs[2].Name(), ShouldEqual, "yamap_plan")
			})
		})

		Convey("When a name is registered twice", func() {
			r.RegisterTool(ToolDefinition{
				Tool:    mcp.NewTool("hallo", mcp.WithDescription("second")),
				Handler: noop,
			})

			Convey("Then the last definition wins", func() {
				got, _ := r.GetToolDefinition("hallo")
				So(got.Tool.Description, ShouldEqual, "second")
				So(r.List(), ShouldHaveLength, 3)
			})
		})
	})
}
