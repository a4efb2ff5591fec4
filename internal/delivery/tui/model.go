// Package tui is the interactive terminal presentation of the catalog table.
// Key presses are translated into usecase actions; the model never filters
// records itself.
package tui

import (
	"context"
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/yourusername/catalog-table/internal/delivery"
	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/logging"
	"github.com/yourusername/catalog-table/internal/usecase"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusName
	focusDate
	focusCategories
)

// Exporter writes the visible records somewhere; satisfied by usecase.CatalogUseCase
type Exporter interface {
	Export(ctx context.Context, records []entity.Record, filePath string) error
}

// Options optional collaborators of the model
type Options struct {
	Exporter    Exporter
	ExportPath  string
	TableHeight int
	Source      string
	Logger      *log.Logger
}

var errNoExporter = errors.New("export is not configured")

type exportedMsg struct {
	path  string
	count int
	err   error
}

// Model bubbletea model for one catalog table
type Model struct {
	ctrl *usecase.TableController
	opts Options

	table     table.Model
	nameInput textinput.Model
	dateInput textinput.Model
	help      help.Model
	keys      keyMap

	focus          focusArea
	categoryCursor int
	visible        []entity.Record
	status         string
	statusErr      bool
	width          int
	quitting       bool
}

// New builds the model around ctrl
func New(ctrl *usecase.TableController, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.TableHeight < 1 {
		opts.TableHeight = 12
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Search by name"
	nameInput.Prompt = ""
	nameInput.CharLimit = 64
	nameInput.Width = 20

	dateInput := textinput.New()
	dateInput.Placeholder = "DD-MM-YYYY"
	dateInput.Prompt = ""
	dateInput.CharLimit = 10
	dateInput.Width = 11

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(opts.TableHeight),
		table.WithStyles(tableStyles()),
	)

	m := Model{
		ctrl:      ctrl,
		opts:      opts,
		table:     t,
		nameInput: nameInput,
		dateInput: dateInput,
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
	m.refresh()
	return m
}

func columns(width int) []table.Column {
	// Name, Category, Date, Price, Rating
	weights := []int{30, 20, 14, 12, 8}
	total := 0
	for _, w := range weights {
		total += w
	}
	usable := max(width-len(weights)*2-2, total)

	cols := make([]table.Column, len(delivery.Headers))
	for i, h := range delivery.Headers {
		cols[i] = table.Column{Title: h, Width: usable * weights[i] / total}
	}
	return cols
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Visible records currently displayed
func (m Model) Visible() []entity.Record {
	return slices.Clone(m.visible)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetColumns(columns(msg.Width))
		m.table.SetWidth(msg.Width)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.setStatus("export failed: "+msg.err.Error(), true)
			m.opts.Logger.Error("export failed", "path", msg.path, "err", msg.err)
		} else {
			m.setStatus(pluralRecords(msg.count)+" exported to "+msg.path, false)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.focus {
		case focusName, focusDate:
			return m.updateInput(msg)
		case focusCategories:
			return m.updateCategories(msg)
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NameFilter), key.Matches(msg, m.keys.NextField):
		cmd := m.focusInput(focusName)
		return m, cmd

	case key.Matches(msg, m.keys.DateFilter):
		cmd := m.focusInput(focusDate)
		return m, cmd

	case key.Matches(msg, m.keys.Price):
		m.dispatch(usecase.ChangePrice{Bucket: nextPrice(m.ctrl.Filter().Price)})
		return m, nil

	case key.Matches(msg, m.keys.Rating):
		m.dispatch(usecase.ChangeRating{Threshold: nextRating(m.ctrl.Filter().MinRating)})
		return m, nil

	case key.Matches(msg, m.keys.Categories):
		m.dispatch(usecase.ToggleDropdown{})
		if m.ctrl.DropdownVisible() {
			m.focus = focusCategories
			m.table.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			m.dispatch(usecase.Delete{ID: r.ID})
			m.setStatus("deleted "+r.Name, false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.dispatch(usecase.Reset{})
		m.nameInput.SetValue("")
		m.dateInput.SetValue("")
		m.setStatus("filters reset", false)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		if m.focus == focusName {
			cmd := m.focusInput(focusDate)
			return m, cmd
		}
		m.blurInputs()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.dispatch(usecase.ChangeName{Text: m.nameInput.Value()})
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
		m.dispatch(usecase.ChangeDate{Text: m.dateInput.Value()})
	}
	return m, cmd
}

func (m Model) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.ctrl.Categories()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.categoryCursor < len(categories)-1 {
			m.categoryCursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.categoryCursor < len(categories) {
			m.dispatch(usecase.ToggleCategory{Key: categories[m.categoryCursor]})
		}

	case msg.String() == "esc", key.Matches(msg, m.keys.Categories):
		m.dispatch(usecase.ToggleDropdown{})
		m.focus = focusTable
		m.table.Focus()

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) focusInput(area focusArea) tea.Cmd {
	m.focus = area
	m.table.Blur()
	if area == focusName {
		m.dateInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.dateInput.Focus()
}

func (m *Model) blurInputs() {
	m.nameInput.Blur()
	m.dateInput.Blur()
	m.focus = focusTable
	m.table.Focus()
}

// dispatch applies an action and re-derives what is shown
func (m *Model) dispatch(a usecase.Action) {
	m.opts.Logger.Debug("action", "type", actionName(a))
	m.ctrl.Dispatch(a)
	m.refresh()
}

func (m *Model) refresh() {
	m.visible = m.ctrl.VisibleRecords()

	rows := make([]table.Row, 0, len(m.visible))
	for _, cells := range delivery.Rows(m.visible) {
		rows = append(rows, table.Row(cells))
	}
	m.table.SetRows(rows)

	switch c := m.table.Cursor(); {
	case len(rows) == 0:
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}
	if n := len(m.ctrl.Categories()); m.categoryCursor >= n {
		m.categoryCursor = max(n-1, 0)
	}
}

func (m Model) selected() (entity.Record, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return entity.Record{}, false
	}
	return m.visible[c], true
}

func (m Model) export() tea.Cmd {
	if m.opts.Exporter == nil || m.opts.ExportPath == "" {
		return func() tea.Msg {
			return exportedMsg{err: errNoExporter}
		}
	}
	records := slices.Clone(m.visible)
	exp, path := m.opts.Exporter, m.opts.ExportPath
	return func() tea.Msg {
		err := exp.Export(context.Background(), records, path)
		return exportedMsg{path: path, count: len(records), err: err}
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func nextPrice(current entity.PriceBucket) entity.PriceBucket {
	i := slices.Index(entity.PriceBuckets, current)
	return entity.PriceBuckets[(i+1)%len(entity.PriceBuckets)]
}

func nextRating(current entity.RatingThreshold) entity.RatingThreshold {
	i := slices.Index(entity.RatingChoices, current)
	return entity.RatingChoices[(i+1)%len(entity.RatingChoices)]
}

func actionName(a usecase.Action) string {
	switch a.(type) {
	case usecase.ChangeName:
		return "change_name"
	case usecase.ChangeDate:
		return "change_date"
	case usecase.ChangePrice:
		return "change_price"
	case usecase.ChangeRating:
		return "change_rating"
	case usecase.ToggleCategory:
		return "toggle_category"
	case usecase.ToggleDropdown:
		return "toggle_dropdown"
	case usecase.Reset:
		return "reset"
	case usecase.Delete:
		return "delete"
	default:
		return "unknown"
	}
}
