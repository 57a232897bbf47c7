package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aufield/sitesheet/internal/application"
	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/domain/report"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill the inspection sheet in an interactive form",
	Long: `Fill the whole inspection sheet on one screen: client details, the eight
checklist items and general notes. Edits stay in memory until ctrl+s saves
them; ctrl+l reloads the last saved sheet, discarding unsaved changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		if os.Getenv("SITESHEET_SKIP_FORM_RUN") == "true" {
			return nil
		}

		m, err := newFormModel(cmd.Context(), ws.Sheets, ws.Bridge)
		if err != nil {
			return MapError(err)
		}
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("form run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(formCmd)
}

// Form styles
var (
	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	focusedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusWatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	statusDefectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	alertOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			MarginTop(1)
	alertErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			MarginTop(1)

	formHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)
)

var clientLabels = []string{
	"Client Name",
	"Property Address",
	"Inspection Date",
	"Engineer Name",
	"Registration Number",
}

const (
	clientFieldCount = 5
	itemsStart       = clientFieldCount
	notEditing       = -1
)

// captureDoneMsg delivers the result of a background capture attempt.
type captureDoneMsg struct {
	itemID string
	res    capture.Result
	err    error
}

type formAlert struct {
	title string
	body  string
	isErr bool
}

type formModel struct {
	sheets *application.SheetService
	bridge *capture.Bridge

	draft        *inspection.Draft
	clientInputs []textinput.Model
	notesArea    textarea.Model
	itemNotes    textinput.Model

	// focusIndex walks client fields, then checklist rows, then the
	// general notes area.
	focusIndex  int
	editingItem int
	capturing   bool
	showPreview bool
	alert       formAlert
	width       int
}

func newFormModel(ctx context.Context, sheets *application.SheetService, bridge *capture.Bridge) (formModel, error) {
	draft, found, err := sheets.LoadOrNew(ctx)
	if err != nil {
		return formModel{}, fmt.Errorf("failed to load draft: %w", err)
	}

	m := formModel{
		sheets:      sheets,
		bridge:      bridge,
		draft:       draft,
		editingItem: notEditing,
		width:       100,
	}

	for i := range clientLabels {
		input := textinput.New()
		input.Placeholder = clientLabels[i]
		input.CharLimit = 120
		input.Width = 40
		m.clientInputs = append(m.clientInputs, input)
	}

	m.notesArea = textarea.New()
	m.notesArea.Placeholder = "General notes for the report"
	m.notesArea.SetWidth(60)
	m.notesArea.SetHeight(3)

	m.itemNotes = textinput.New()
	m.itemNotes.CharLimit = 300
	m.itemNotes.Width = 50

	m.seedFromDraft()
	m.clientInputs[0].Focus()
	m.clientInputs[0].PromptStyle = focusedRowStyle
	m.clientInputs[0].TextStyle = focusedRowStyle

	if found {
		m.alert = formAlert{title: "Draft loaded", body: "Continuing the saved inspection sheet"}
	} else {
		m.alert = formAlert{title: "New sheet", body: "No saved draft found; starting fresh"}
	}
	return m, nil
}

// seedFromDraft copies the draft into the inputs. Item rows read straight
// from the draft, so only client fields and general notes need seeding.
func (m *formModel) seedFromDraft() {
	values := []string{
		m.draft.ClientInfo.ClientName,
		m.draft.ClientInfo.PropertyAddress,
		m.draft.ClientInfo.InspectionDate,
		m.draft.ClientInfo.EngineerName,
		m.draft.ClientInfo.RegistrationNumber,
	}
	for i := range m.clientInputs {
		m.clientInputs[i].SetValue(values[i])
	}
	m.notesArea.SetValue(m.draft.GeneralNotes)
}

// syncToDraft copies input values back onto the draft before a save or a
// preview render.
func (m *formModel) syncToDraft() {
	for i, field := range inspection.AllClientFields() {
		_ = m.draft.SetClientField(field, m.clientInputs[i].Value())
	}
	m.draft.SetGeneralNotes(m.notesArea.Value())
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) focusCount() int {
	return clientFieldCount + len(m.draft.Checklist) + 1
}

func (m formModel) notesIndex() int {
	return m.focusCount() - 1
}

func (m formModel) focusedItem() int {
	if m.focusIndex >= itemsStart && m.focusIndex < m.notesIndex() {
		return m.focusIndex - itemsStart
	}
	return -1
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case captureDoneMsg:
		return m.handleCaptureDone(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Item notes editing grabs the keyboard until enter or esc.
		if m.editingItem != notEditing {
			switch msg.String() {
			case "enter":
				notes := m.itemNotes.Value()
				id := m.draft.Checklist[m.editingItem].ID
				_ = m.draft.ApplyItemPatch(id, inspection.ItemPatch{Notes: &notes})
				m.editingItem = notEditing
				m.itemNotes.Blur()
				return m, nil
			case "esc":
				m.editingItem = notEditing
				m.itemNotes.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.itemNotes, cmd = m.itemNotes.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			m.syncToDraft()
			if err := m.sheets.Save(context.Background(), m.draft); err != nil {
				m.alert = formAlert{title: "Save failed", body: err.Error(), isErr: true}
			} else {
				m.alert = formAlert{title: "Draft saved", body: "All changes stored"}
			}
			return m, nil

		case "ctrl+l":
			draft, err := m.sheets.Load(context.Background())
			if err != nil {
				if errors.Is(err, inspection.ErrNoDraft) {
					m.alert = formAlert{title: "Nothing to load", body: "No saved draft found", isErr: true}
				} else {
					m.alert = formAlert{title: "Load failed", body: err.Error(), isErr: true}
				}
				return m, nil
			}
			m.draft = draft
			m.seedFromDraft()
			m.alert = formAlert{title: "Draft loaded", body: "Unsaved changes discarded"}
			return m, nil

		case "ctrl+r":
			m.showPreview = !m.showPreview
			return m, nil

		case "tab", "down":
			if msg.String() == "down" && m.focusIndex == m.notesIndex() {
				break // let the textarea move its own cursor
			}
			m.focusIndex++
			if m.focusIndex >= m.focusCount() {
				m.focusIndex = 0
			}
			return m, m.updateFocus()

		case "shift+tab", "up":
			if msg.String() == "up" && m.focusIndex == m.notesIndex() {
				break
			}
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = m.focusCount() - 1
			}
			return m, m.updateFocus()

		case "enter":
			if item := m.focusedItem(); item >= 0 {
				m.editingItem = item
				m.itemNotes.SetValue(m.draft.Checklist[item].Notes)
				return m, m.itemNotes.Focus()
			}
			if m.focusIndex < clientFieldCount {
				m.focusIndex++
				return m, m.updateFocus()
			}

		case "s":
			if item := m.focusedItem(); item >= 0 {
				entry := m.draft.Checklist[item]
				next := entry.Status.Next()
				_ = m.draft.ApplyItemPatch(entry.ID, inspection.ItemPatch{Status: &next})
				return m, nil
			}

		case "p":
			if item := m.focusedItem(); item >= 0 {
				if m.capturing {
					m.alert = formAlert{title: "Capture in progress", body: "Wait for the current capture to finish", isErr: true}
					return m, nil
				}
				m.capturing = true
				m.alert = formAlert{title: "Capturing", body: "Opening the camera..."}
				return m, m.captureCmd(m.draft.Checklist[item].ID)
			}
		}
	}

	return m, m.updateInputs(msg)
}

func (m formModel) handleCaptureDone(msg captureDoneMsg) formModel {
	m.capturing = false
	if msg.err != nil {
		m.alert = formAlert{title: "Capture failed", body: msg.err.Error(), isErr: true}
		return m
	}
	switch msg.res.Outcome {
	case capture.OutcomeCaptured:
		uri := msg.res.PhotoURI
		_ = m.draft.ApplyItemPatch(msg.itemID, inspection.ItemPatch{PhotoURI: &uri})
		m.alert = formAlert{title: "Photo captured", body: "Attached (remember to ctrl+s to keep it)"}
	case capture.OutcomeCancelled:
		m.alert = formAlert{title: "Capture cancelled", body: "The sheet was not changed", isErr: true}
	case capture.OutcomePermissionDenied:
		m.alert = formAlert{title: "Camera permission denied", body: "Check the camera command in settings.yaml", isErr: true}
	}
	return m
}

func (m formModel) captureCmd(itemID string) tea.Cmd {
	bridge := m.bridge
	return func() tea.Msg {
		res, err := bridge.Capture(context.Background(), capture.Options{ItemID: itemID})
		return captureDoneMsg{itemID: itemID, res: res, err: err}
	}
}

func (m *formModel) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.clientInputs)+1)
	for i := range m.clientInputs {
		if i == m.focusIndex {
			cmds = append(cmds, m.clientInputs[i].Focus())
			m.clientInputs[i].PromptStyle = focusedRowStyle
			m.clientInputs[i].TextStyle = focusedRowStyle
		} else {
			m.clientInputs[i].Blur()
			m.clientInputs[i].PromptStyle = lipgloss.NewStyle()
			m.clientInputs[i].TextStyle = lipgloss.NewStyle()
		}
	}
	if m.focusIndex == m.notesIndex() {
		cmds = append(cmds, m.notesArea.Focus())
	} else {
		m.notesArea.Blur()
	}
	return tea.Batch(cmds...)
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.clientInputs)+1)
	if m.focusIndex < clientFieldCount {
		var cmd tea.Cmd
		m.clientInputs[m.focusIndex], cmd = m.clientInputs[m.focusIndex].Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.focusIndex == m.notesIndex() {
		var cmd tea.Cmd
		m.notesArea, cmd = m.notesArea.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func statusStyle(s inspection.ItemStatus) lipgloss.Style {
	switch s {
	case inspection.StatusDefect:
		return statusDefectStyle
	case inspection.StatusMonitor:
		return statusWatchStyle
	default:
		return statusOKStyle
	}
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(formTitleStyle.Render("WA Structural Inspection Sheet"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("CLIENT"))
	b.WriteString("\n")
	for i, input := range m.clientInputs {
		label := clientLabels[i]
		if i == m.focusIndex {
			b.WriteString(focusedRowStyle.Render(fmt.Sprintf("› %-20s", label)))
		} else {
			b.WriteString(blurredRowStyle.Render(fmt.Sprintf("  %-20s", label)))
		}
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("CHECKLIST"))
	b.WriteString("\n")
	for i, item := range m.draft.Checklist {
		focused := m.focusIndex == itemsStart+i
		marker := "  "
		style := blurredRowStyle
		if focused {
			marker = "› "
			style = focusedRowStyle
		}

		photo := " "
		if item.PhotoURI != "" {
			photo = "*"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %-34s", marker, i+1, item.Label)))
		b.WriteString(statusStyle(item.Status).Render(fmt.Sprintf("[%s]", item.Status.DisplayName())))
		b.WriteString(" " + photo)
		b.WriteString("\n")

		if m.editingItem == i {
			b.WriteString("     notes: " + m.itemNotes.View())
			b.WriteString("\n")
		} else if item.Notes != "" {
			b.WriteString(dimStyle.Render("     " + item.Notes))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("GENERAL NOTES"))
	b.WriteString("\n")
	b.WriteString(m.notesArea.View())
	b.WriteString("\n")

	if m.alert.title != "" {
		line := fmt.Sprintf("%s: %s", m.alert.title, m.alert.body)
		if m.alert.isErr {
			b.WriteString(alertErrStyle.Render(line))
		} else {
			b.WriteString(alertOKStyle.Render(line))
		}
		b.WriteString("\n")
	}

	help := "[Tab/↓] Next • [Shift+Tab/↑] Previous • [Enter] Item Notes • [S] Status • [P] Photo • [Ctrl+S] Save • [Ctrl+L] Load • [Ctrl+R] Preview • [Esc] Quit"
	b.WriteString(formHelpStyle.Render(help))

	form := b.String()
	if !m.showPreview {
		return form
	}

	preview := m.draft.Clone()
	synced := formModel{draft: preview, clientInputs: m.clientInputs, notesArea: m.notesArea}
	synced.syncToDraft()
	return lipgloss.JoinHorizontal(lipgloss.Top, form, previewStyle.Render(report.Render(preview)))
}
