package dostrap

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/arthur-debert/dostrap/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(renderGuide(guideContent))
		},
	}
}

// renderGuide converts the guide markdown to terminal output, falling
// back to the raw markdown when the terminal can't take styling
func renderGuide(content string) string {
	if ui.DetectFormat(os.Stdout) == ui.FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
