package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-simul/internal/watch"
	"github.com/MKhiriev/go-simul/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// eventFeedSize caps how many recent events are kept on screen.
const eventFeedSize = 8

type watchModel struct {
	service *watch.Service
	baseURL string

	games   []models.OngoingGame
	idx     int
	loading bool
	spin    spinner.Model

	feed []feedEntry

	status string
	errMsg string

	quitByUser bool
}

type feedEntry struct {
	at    time.Time
	label string
}

type gamesMsg struct {
	games []models.OngoingGame
}

type eventMsg struct {
	event models.Event
}

type gamesClosedMsg struct{}

type eventsClosedMsg struct{}

func newWatchModel(service *watch.Service, baseURL string) watchModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return watchModel{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		loading: true,
		spin:    spin,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.cmdWaitGames(), m.cmdWaitEvent(), m.spin.Tick)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gamesMsg:
		m.loading = false
		m.games = msg.games
		if m.idx >= len(m.games) {
			m.idx = len(m.games) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, m.cmdWaitGames()

	case eventMsg:
		m.feed = append(m.feed, feedEntry{at: time.Now(), label: eventLabel(msg.event)})
		if len(m.feed) > eventFeedSize {
			m.feed = m.feed[len(m.feed)-eventFeedSize:]
		}
		return m, m.cmdWaitEvent()

	case gamesClosedMsg, eventsClosedMsg:
		// The watch service stopped; the screen stays usable until quit.
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.games)-1 {
			m.idx++
		}
	case "c":
		game, ok := m.current()
		if !ok {
			m.status = "Нет партий"
			return m, nil
		}
		url := m.baseURL + "/" + game.FullID
		if err := clipboard.WriteAll(url); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Ссылка скопирована"
		m.errMsg = ""
	}

	return m, nil
}

func (m watchModel) View() string {
	out := ""

	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if m.loading {
		out += m.spin.View() + " Загрузка партий...\n"
	} else if len(m.games) == 0 {
		out += "Активных партий нет\n"
	} else {
		out += "     │ Соперник                 │ Контроль   │ Цвет   │ Ход\n"
		out += "─────┼──────────────────────────┼────────────┼────────┼──────\n"
		for i, game := range m.games {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			turn := "-"
			if game.IsMyTurn {
				turn = "мой"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-10s │ %-6s │ %s\n",
				cursor,
				i+1,
				fitText(opponentLabel(game.Opponent), 24),
				fitText(game.Speed, 10),
				colorLabel(game.Color),
				turn,
			)
		}
	}

	out += "\n[ СОБЫТИЯ ]\n"
	if len(m.feed) == 0 {
		out += "(пока пусто)\n"
	} else {
		for i := len(m.feed) - 1; i >= 0; i-- {
			entry := m.feed[i]
			out += entry.at.Format("15:04:05") + "  " + entry.label + "\n"
		}
	}

	return renderPage(
		"ТЕКУЩИЕ ПАРТИИ",
		strings.TrimRight(out, "\n"),
		"c: копировать ссылку │ ↑/↓: навигация │ q: выход",
	)
}

func (m watchModel) current() (models.OngoingGame, bool) {
	if len(m.games) == 0 || m.idx < 0 || m.idx >= len(m.games) {
		return models.OngoingGame{}, false
	}
	return m.games[m.idx], true
}

func (m watchModel) cmdWaitGames() tea.Cmd {
	ch := m.service.Games()

	return func() tea.Msg {
		games, ok := <-ch
		if !ok {
			return gamesClosedMsg{}
		}
		return gamesMsg{games: games}
	}
}

func (m watchModel) cmdWaitEvent() tea.Cmd {
	ch := m.service.Events()

	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: event}
	}
}

func opponentLabel(o models.Opponent) string {
	if o.Username != "" {
		return o.Username
	}
	if o.ID != "" {
		return o.ID
	}
	return "AI"
}

func colorLabel(color string) string {
	switch color {
	case "white":
		return "белые"
	case "black":
		return "чёрные"
	default:
		return valueOrDash(color)
	}
}

func eventLabel(event models.Event) string {
	switch event.Type {
	case "gameStart":
		if event.Game != nil {
			return "партия началась: " + event.Game.ID
		}
		return "партия началась"
	case "gameFinish":
		if event.Game != nil {
			return "партия завершена: " + event.Game.ID
		}
		return "партия завершена"
	case "challenge":
		if event.Challenge != nil && event.Challenge.Challenger.Name != "" {
			return "вызов от " + event.Challenge.Challenger.Name
		}
		return "новый вызов"
	case "challengeCanceled":
		return "вызов отменён"
	case "challengeDeclined":
		return "вызов отклонён"
	default:
		return event.Type
	}
}
