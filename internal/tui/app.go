package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinlens/internal/domain"
)

type view int

const (
	viewMarkets view = iota
	viewTrending
	viewNews
	viewSentiment
	viewRates
	viewCount
)

var viewNames = [viewCount]string{"Markets", "Trending", "News", "Sentiment", "Rates"}

const (
	fetchTimeout = 15 * time.Second
	marketRows   = 25
	newsItems    = 20
)

// Querier is the data surface the dashboard reads from. *service.Aggregator
// satisfies it.
type Querier interface {
	TopCoins(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket
	TrendingCoins(ctx context.Context) []domain.TrendingCoin
	News(ctx context.Context, limit int) []domain.Article
	SentimentIndex(ctx context.Context) domain.SentimentReading
	ExchangeRates(ctx context.Context) domain.ConversionTable
}

// Services carries everything a dashboard session needs.
type Services struct {
	Data     Querier
	Username string
}

type AppModel struct {
	svc Services

	view   view
	width  int
	height int

	table   table.Model
	spinner spinner.Model
	loading bool

	markets   []domain.CoinMarket
	trending  []domain.TrendingCoin
	articles  []domain.Article
	sentiment domain.SentimentReading
	rates     domain.ConversionTable

	newsCursor int
}

func NewAppModel(svc Services) *AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	t := table.New(
		table.WithColumns(marketColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorTabActive).
		Bold(false)
	t.SetStyles(st)

	return &AppModel{
		svc:     svc,
		spinner: sp,
		table:   t,
	}
}

func marketColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 18},
		{Title: "Symbol", Width: 7},
		{Title: "Price", Width: 14},
		{Title: "24h %", Width: 9},
		{Title: "7d %", Width: 9},
		{Title: "Market Cap", Width: 12},
		{Title: "Volume", Width: 12},
	}
}

// SetSize resizes the dashboard. Called by the SSH middleware with the
// client's PTY dimensions and again on every window resize.
func (m *AppModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if h := m.contentHeight() - 1; h > 2 {
		m.table.SetHeight(h)
	}
}

func (m *AppModel) contentHeight() int {
	// header, tab bar and status bar each take one line
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (m *AppModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.fetchView(m.view), m.spinner.Tick)
}

// fetchView captures the querier into the closure so the command never
// touches model state from another goroutine.
func (m *AppModel) fetchView(v view) tea.Cmd {
	data := m.svc.Data
	switch v {
	case viewTrending:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return trendingMsg{coins: data.TrendingCoins(ctx)}
		}
	case viewNews:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return newsMsg{articles: data.News(ctx, newsItems)}
		}
	case viewSentiment:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return sentimentMsg{reading: data.SentimentIndex(ctx)}
		}
	case viewRates:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return ratesMsg{table: data.ExchangeRates(ctx)}
		}
	default:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return marketsMsg{coins: data.TopCoins(ctx, marketRows, 1, domain.OrderMarketCap)}
		}
	}
}

func (m *AppModel) hasData(v view) bool {
	switch v {
	case viewTrending:
		return len(m.trending) > 0
	case viewNews:
		return len(m.articles) > 0
	case viewSentiment:
		return !m.sentiment.IsZero()
	case viewRates:
		return len(m.rates) > 0
	default:
		return len(m.markets) > 0
	}
}

func (m *AppModel) switchTo(v view) tea.Cmd {
	m.view = v
	if m.hasData(v) {
		return nil
	}
	m.loading = true
	return tea.Batch(m.fetchView(v), m.spinner.Tick)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case marketsMsg:
		m.markets = msg.coins
		m.table.SetRows(marketTableRows(msg.coins))
		m.loading = false
		return m, nil

	case trendingMsg:
		m.trending = msg.coins
		m.loading = false
		return m, nil

	case newsMsg:
		m.articles = msg.articles
		if m.newsCursor >= len(m.articles) {
			m.newsCursor = max(0, len(m.articles)-1)
		}
		m.loading = false
		return m, nil

	case sentimentMsg:
		m.sentiment = msg.reading
		m.loading = false
		return m, nil

	case ratesMsg:
		m.rates = msg.table
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		return m, m.switchTo((m.view + 1) % viewCount)
	case "shift+tab":
		return m, m.switchTo((m.view + viewCount - 1) % viewCount)
	case "1", "2", "3", "4", "5":
		return m, m.switchTo(view(msg.String()[0] - '1'))
	case "r":
		if !m.loading {
			m.loading = true
			return m, tea.Batch(m.fetchView(m.view), m.spinner.Tick)
		}
		return m, nil
	case "j", "down":
		if m.view == viewNews {
			if m.newsCursor < len(m.articles)-1 {
				m.newsCursor++
			}
			return m, nil
		}
	case "k", "up":
		if m.view == viewNews {
			if m.newsCursor > 0 {
				m.newsCursor--
			}
			return m, nil
		}
	}

	if m.view == viewMarkets {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AppModel) View() string {
	if m.width == 0 {
		return brandStyle.Render("coinlens")
	}

	header := m.renderHeader()
	tabs := renderTabs(m.view)

	var content string
	switch m.view {
	case viewTrending:
		content = renderTrending(m.trending, m.width-4)
	case viewNews:
		content = renderNews(m.articles, m.newsCursor, m.contentHeight(), m.width-4)
	case viewSentiment:
		content = renderSentiment(m.sentiment, m.width-4)
	case viewRates:
		content = renderRates(m.rates)
	default:
		if len(m.markets) == 0 {
			content = placeholderStyle.Render("No market data")
		} else {
			content = m.table.View()
		}
	}
	content = fitHeight(content, m.contentHeight())

	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, status)
}

func (m *AppModel) renderHeader() string {
	left := brandStyle.Render("coinlens")

	meta := time.Now().Format("Jan 2 15:04")
	if m.svc.Username != "" {
		meta = m.svc.Username + " · " + meta
	}
	right := headerMetaStyle.Render(meta + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (m *AppModel) renderStatus() string {
	left := " tab switch  1-5 jump  r refresh  q quit"
	if m.view == viewNews {
		left = " j/k scroll  " + left[1:]
	}

	right := ""
	if m.loading {
		right = m.spinner.View() + " loading "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(m.width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

func renderTabs(active view) string {
	parts := make([]string, 0, viewCount)
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// fitHeight pads or trims content so the status bar always sits on the
// bottom row of the terminal.
func fitHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
