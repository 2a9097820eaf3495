package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cardvault/api/rpc/cardvault/cardvaultconnect"
	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/session"
	"github.com/domino14/cardvault/internal/srs"
)

type keyMap struct {
	Flip   key.Binding
	Again  key.Binding
	Hard   key.Binding
	Good   key.Binding
	Easy   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Again, k.Hard, k.Good, k.Easy}, {k.Flip, k.Reload, k.Quit}}
}

var keys = keyMap{
	Flip:   key.NewBinding(key.WithKeys(" ", "enter", "f"), key.WithHelp("space", "flip")),
	Again:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "again")),
	Hard:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "hard")),
	Good:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "good")),
	Easy:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "easy")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type loadedMsg struct{ err error }

type ratedMsg struct {
	rating srs.Rating
	rec    srs.ReviewRecord
	err    error
}

type model struct {
	sess     *session.Session
	username string
	help     help.Model
	spinner  spinner.Model
	loading  bool
	rating   bool
	status   string
}

func initialModel(sess *session.Session, username string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	h := help.New()
	h.ShowAll = true
	return model{sess: sess, username: username, help: h, spinner: sp, loading: true}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, startCmd(m.sess))
}

func startCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: sess.Start(context.Background())}
	}
}

func reloadCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		sess.Reset(context.Background())
		return loadedMsg{}
	}
}

func rateCmd(sess *session.Session, rating srs.Rating) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		rec, err := sess.Rate(ctx, rating)
		return ratedMsg{rating: rating, rec: rec, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case m.loading || m.rating:
			return m, nil
		case key.Matches(msg, keys.Flip):
			m.sess.Flip()
			return m, nil
		case key.Matches(msg, keys.Reload):
			m.loading = true
			m.status = ""
			return m, reloadCmd(m.sess)
		}
		for rating, b := range []key.Binding{keys.Again, keys.Hard, keys.Good, keys.Easy} {
			if key.Matches(msg, b) && m.sess.Flipped() {
				m.rating = true
				return m, rateCmd(m.sess, srs.Rating(rating))
			}
		}

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "Could not start the session: " + msg.err.Error()
		}

	case ratedMsg:
		m.rating = false
		var serr *session.SubmitError
		switch {
		case msg.err == nil:
			m.status = fmt.Sprintf("%s: next review in %s", msg.rating.Label(), srs.FormatInterval(msg.rec.Interval))
		case errors.Is(msg.err, session.ErrAlreadyRecorded):
			m.status = "That card was already recorded. Moving on."
		case errors.As(msg.err, &serr):
			m.status = "Rating did not go through, please rate again: " + serr.Err.Error()
		default:
			m.status = msg.err.Error()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Logged in as " + m.username + "\n")
	if st := m.sess.Stats(); st != nil {
		fmt.Fprintf(&b, "%d cards: %d new, %d learning, %d review, %d due, %d mature. Avg ease %.2f\n",
			st.TotalCards, st.NewCards, st.LearningCards, st.ReviewCards, st.DueCards, st.MatureCards, st.AverageEase)
	}
	b.WriteString(strings.Repeat("-", 40) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading due cards\n")
	case m.sess.Complete():
		fmt.Fprintf(&b, "No cards due. You reviewed %d cards this session.\n", m.sess.Reviewed())
	default:
		card, _ := m.sess.Current()
		fmt.Fprintf(&b, "[%s] %d left\n\n", card.Status, m.sess.Remaining())
		if card.Flashcard != nil {
			b.WriteString("  " + card.Flashcard.Question + "\n\n")
			if m.sess.Flipped() {
				b.WriteString("  " + card.Flashcard.Answer + "\n\n")
			}
		}
		if m.sess.Flipped() {
			var previews []string
			for _, r := range srs.AllRatings() {
				p, _ := m.sess.Preview(r)
				previews = append(previews, fmt.Sprintf("(%d) %s %s", int(r)+1, r.Label(), p))
			}
			b.WriteString(strings.Join(previews, "    ") + "\n")
		}
		if m.rating {
			b.WriteString(m.spinner.View() + " submitting\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.View(keys) + "\n")
	return b.String()
}

// usernameFromToken reads the display name without verifying the token; the
// server does the verifying.
func usernameFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "?"
	}
	if usn, ok := claims["usn"].(string); ok && usn != "" {
		return usn
	}
	sub, _ := claims.GetSubject()
	return sub
}

func main() {
	config.LoadDotEnv()
	fs := flag.NewFlagSet("cardvaultcli", flag.ExitOnError)
	serverURL := fs.String("server-url", "http://localhost:8180", "cardvault server")
	token := fs.String("token", "", "JWT to authenticate with")
	collection := fs.String("collection", "", "collection id to review")
	logFile := fs.String("log-file", "cardvaultcli.log", "where to write logs")
	fs.Parse(os.Args[1:])

	// The scheduling policy comes from the environment so previews match the
	// server's.
	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		fmt.Println("bad policy configuration:", err)
		os.Exit(1)
	}
	cid, err := uuid.Parse(*collection)
	if err != nil {
		fmt.Println("please pass a collection id with -collection")
		os.Exit(1)
	}
	if *token == "" {
		fmt.Println("please pass a token with -token or TOKEN")
		os.Exit(1)
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	client := cardvaultconnect.NewReviewServiceClient(&http.Client{Timeout: 10 * time.Second}, *serverURL)
	sess := session.New(session.NewRemote(client, *token), cfg.Policy, cid)

	p := tea.NewProgram(initialModel(sess, usernameFromToken(*token)))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
