package console

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bnema/sentiment-setup/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 70

type Reporter struct {
	out         io.Writer
	styles      styles
	interactive bool
	run         programRunner
}

var _ ports.Reporter = (*Reporter)(nil)

// New returns a Reporter writing to out. Spinners are only drawn when
// interactive is true; otherwise each tracked step prints a single line.
func New(out io.Writer, interactive bool) *Reporter {
	return &Reporter{
		out:         out,
		styles:      newStyles(lipgloss.NewRenderer(out)),
		interactive: interactive,
		run:         runProgram,
	}
}

func (r *Reporter) Banner() {
	rule := r.styles.rule.Render(strings.Repeat("=", ruleWidth))
	r.println(rule)
	r.println(r.styles.title.Render("🚀 Advanced Sentiment Analysis System - Setup"))
	r.println(rule)
	r.println("Setting up your production-ready sentiment analysis platform...")
	r.println("")
}

func (r *Reporter) Step(title string) {
	r.println("")
	r.println(r.styles.step.Render("▸ " + title))
}

func (r *Reporter) Info(message string) {
	r.println("   " + r.styles.detail.Render(message))
}

func (r *Reporter) Success(message string) {
	r.println(r.styles.success.Render("✅ " + message))
}

func (r *Reporter) Warn(message string) {
	r.println("   " + r.styles.warning.Render("⚠️  "+message))
}

func (r *Reporter) Fail(message string) {
	r.println(r.styles.failure.Render("❌ " + message))
}

func (r *Reporter) Track(ctx context.Context, label string, fn func(context.Context) error) error {
	if !r.interactive {
		r.println("   " + label)
		return fn(ctx)
	}

	err := runSpinner(ctx, r.run, r.out, label, r.styles.spinner, fn)
	r.println("   " + label)
	return err
}

func (r *Reporter) NextSteps(configPath, notebookPath string) {
	rule := r.styles.rule.Render(strings.Repeat("=", ruleWidth))
	configName := filepath.Base(configPath)
	notebookName := filepath.Base(notebookPath)

	lines := []string{
		"",
		rule,
		r.styles.title.Render("🎉 Setup completed successfully!"),
		rule,
		"",
		r.styles.step.Render("📋 Next Steps:"),
		"   1. Start Jupyter Notebook:",
		"      " + r.styles.command.Render("jupyter notebook "+notebookName),
		"",
		"   2. Run all cells in the notebook to initialize the system",
		"",
		"   3. The system will automatically use your configured API key",
		"",
		"   4. Check the README.md for detailed usage examples",
		"",
		r.styles.step.Render("🔗 Useful Links:"),
		"   • Documentation: README.md",
		"   • Contributing: CONTRIBUTING.md",
		"   • License: LICENSE",
		"",
		r.styles.step.Render("💡 Tips:"),
		fmt.Sprintf("   • Keep your %s file secure and never commit it to git", configName),
		"   • Monitor your OpenAI API usage at platform.openai.com",
		"   • Check CHANGELOG.md for updates and new features",
		"",
		rule,
	}

	r.println(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}
