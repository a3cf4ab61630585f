// Package cli implementa la cáscara interactiva del inventario: menú,
// presentación y gráfico de barras. Consume únicamente la superficie de
// los casos de uso; no contiene lógica de negocio.
package cli

import "github.com/charmbracelet/lipgloss"

// Paleta del CLI.
var (
	colorPrimary = lipgloss.Color("#5FAFD7") // azul para encabezados y barras
	colorSuccess = lipgloss.Color("#5FD787")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleBar     = lipgloss.NewStyle().Foreground(colorPrimary)
)
