package console

import "github.com/charmbracelet/lipgloss"

// 终端配色
var (
	ColorRed    = lipgloss.Color("#FF0000")
	ColorCyan   = lipgloss.Color("#00FFFF")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorGray   = lipgloss.Color("#666666")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	// 到达数据末尾时的闪烁提示
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Blink(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorGray)
)

// Divider 每组统计之后的分隔线
var Divider = DimStyle.Render("----------------------------------------")
