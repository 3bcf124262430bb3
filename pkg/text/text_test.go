package text

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_SplitsLines(t *testing.T) {
	txt := Raw("Are you sure?\r\nThis cannot be undone.")

	require.Equal(t, 2, txt.Height())
	assert.Equal(t, "Are you sure?", txt.Lines[0].Plain())
	assert.Equal(t, "This cannot be undone.", txt.Lines[1].Plain())
	assert.Equal(t, 22, txt.Width())
}

func TestRaw_Empty(t *testing.T) {
	txt := Raw("")

	assert.Equal(t, 0, txt.Height())
	assert.Equal(t, 0, txt.Width())
}

func TestLine_WidthCountsCells(t *testing.T) {
	line := NewLine(RawSpan("Sì "), StyledSpan("日本", lipgloss.NewStyle().Bold(true)))

	assert.Equal(t, 7, line.Width())
	assert.Equal(t, "Sì 日本", line.Plain())
}

func TestLine_RenderKeepsContent(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	line := NewLine(RawSpan("delete "), StyledSpan("all", lipgloss.NewStyle().Bold(true)), RawSpan(" files"))

	assert.Equal(t, "delete all files", ansi.Strip(line.Render(base)))
}

func TestLine_Aligned(t *testing.T) {
	line := RawLine("x").Aligned(AlignRight)

	require.NotNil(t, line.Alignment)
	assert.Equal(t, AlignRight, *line.Alignment)
}

func TestStyled_AppliesStyleToEveryLine(t *testing.T) {
	style := lipgloss.NewStyle().Italic(true)
	txt := Styled("a\nb", style)

	for _, l := range txt.Lines {
		require.Len(t, l.Spans, 1)
		assert.True(t, l.Spans[0].Style.GetItalic())
	}
}

func TestWrap_BreaksAtWords(t *testing.T) {
	rows := Wrap("the quick brown fox jumps", 10, true)

	require.Greater(t, len(rows), 1)
	for _, row := range rows {
		assert.LessOrEqual(t, ansi.StringWidth(row), 10)
		assert.False(t, strings.HasPrefix(ansi.Strip(row), " "), "row %q keeps leading space", row)
	}
	joined := strings.Join(rows, " ")
	assert.Equal(t, "the quick brown fox jumps", strings.Join(strings.Fields(ansi.Strip(joined)), " "))
}

func TestWrap_TrimsShortRow(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Wrap("   hello", 20, true))
	assert.Equal(t, []string{"   hello"}, Wrap("   hello", 20, false))
}

func TestWrap_ZeroWidth(t *testing.T) {
	assert.Nil(t, Wrap("anything", 0, true))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(AlignLeft, 4, 10))
	assert.Equal(t, 3, Offset(AlignCenter, 4, 10))
	assert.Equal(t, 6, Offset(AlignRight, 4, 10))
	assert.Equal(t, 0, Offset(AlignCenter, 12, 10))
}

func TestParseAlignment(t *testing.T) {
	assert.Equal(t, AlignCenter, ParseAlignment(" Center "))
	assert.Equal(t, AlignRight, ParseAlignment("right"))
	assert.Equal(t, AlignLeft, ParseAlignment("diagonal"))
}
