package main

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

const callbackRemovePrefix = "rm:"

type TelegramBot struct {
	ai       *LottoAI // nil when AI routing is disabled
	b        *telego.Bot
	UpdateCh <-chan telego.Update
	cancelF  context.CancelFunc
	chatIDs  []int64

	sessions *Sessions
	gen      *Generator
	exporter *Exporter
	loc      *Locale
	delay    time.Duration

	wg         sync.WaitGroup
	listenDone chan struct{}
	genCnt     atomic.Uint64
	exportCnt  atomic.Uint64
}

type BotDeps struct {
	AI       *LottoAI
	Gen      *Generator
	Exporter *Exporter
	Locale   *Locale
	Delay    time.Duration
}

func NewTelegramBot(deps BotDeps, apiToken string, chatIDs ...int64) (*TelegramBot, error) {
	b, err := telego.NewBot(apiToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	ctx, cancelF := context.WithCancel(context.Background())
	tuCh, err := b.UpdatesViaLongPolling(ctx, nil) // 폴링방식으로
	if err != nil {
		cancelF()
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	tb := newTelegramBot(b, deps, chatIDs...)
	tb.UpdateCh = tuCh
	tb.cancelF = cancelF
	return tb, nil
}

func newTelegramBot(b *telego.Bot, deps BotDeps, chatIDs ...int64) *TelegramBot {
	return &TelegramBot{
		ai:       deps.AI,
		b:        b,
		cancelF:  func() {},
		chatIDs:  chatIDs,
		sessions: NewSessions(),
		gen:      deps.Gen,
		exporter: deps.Exporter,
		loc:      deps.Locale,
		delay:    deps.Delay,

		listenDone: make(chan struct{}),
	}
}

// Close stops polling and waits for Listen and in-flight handlers.
func (tb *TelegramBot) Close() {
	tb.cancelF()
	<-tb.listenDone
	tb.wg.Wait()
}

func (tb *TelegramBot) Listen() {
	defer close(tb.listenDone)
	for update := range tb.UpdateCh {
		switch {
		case update.CallbackQuery != nil:
			q := update.CallbackQuery
			tb.wg.Add(1)
			go func() {
				defer tb.wg.Done()
				tb.handleCallback(q)
			}()
		case update.Message != nil:
			msg := update.Message
			if !tb.allowed(msg.Chat.ID) {
				log.Debugf("ignoring chat %d", msg.Chat.ID)
				continue
			}
			tb.wg.Add(1)
			go func() {
				defer tb.wg.Done()
				tb.handleMessage(msg)
			}()
		}
	}
}

func (tb *TelegramBot) allowed(id int64) bool {
	return len(tb.chatIDs) == 0 || slices.Contains(tb.chatIDs, id)
}

// parseCommand splits "/cmd@bot a b" into "/cmd" and its args.
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := fields[0]
	if !strings.HasPrefix(cmd, "/") {
		return text, nil
	}
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), fields[1:]
}

// parseLabel accepts a row letter (A-E) or a 1-based row number.
func parseLabel(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		c := s[0] &^ 0x20 // upper case
		if c >= 'A' && c < 'A'+MaxSets {
			return int(c - 'A'), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= MaxSets {
		return n - 1, true
	}
	return 0, false
}

func (tb *TelegramBot) handleMessage(msg *telego.Message) {
	ctx := context.Background()
	id := msg.Chat.ID
	username := msg.Chat.Username

	cmd, args := parseCommand(msg.Text)
	if !strings.HasPrefix(cmd, "/") && tb.ai != nil {
		routed, err := tb.ai.Route(ctx, msg.Text)
		if err != nil {
			log.Errorf("failed to route %q: %v", msg.Text, err)
		} else {
			cmd, args = routed.Action, routed.Args
		}
	}

	ticket := tb.sessions.Get(id)
	switch cmd {
	case "/start":
		tb.sendMessage(id, "pong")

	case "/gen", "/rand", "/lotto":
		_, err := ticket.Generate(tb.gen, tb.delay, func() {
			tb.sendMessage(id, tb.loc.T(msgGenerating))
		})
		if err != nil {
			tb.sendMessage(id, tb.loc.Notice(err))
			return
		}
		tb.genCnt.Add(1)
		log.Infof("%s 의 요청으로 로또 번호를 생성했습니다. (%d/%d)", username, ticket.Len(), MaxSets)
		tb.sendTicket(id, ticket)

	case "/show":
		tb.sendTicket(id, ticket)

	case "/rm", "/remove":
		if len(args) == 0 {
			tb.sendMessage(id, tb.loc.T(msgUsage))
			return
		}
		i, ok := parseLabel(args[0])
		if !ok {
			tb.sendMessage(id, tb.loc.T(msgSetNotFound, args[0]))
			return
		}
		if _, err := ticket.RemoveAt(i); err != nil {
			tb.sendMessage(id, tb.loc.T(msgSetNotFound, Label(i)))
			return
		}
		tb.sendMessage(id, tb.loc.T(msgRemoved, Label(i)))
		tb.sendTicket(id, ticket)

	case "/clear":
		ticket.Clear()
		tb.sendMessage(id, tb.loc.T(msgCleared))

	case "/export", "/image":
		tb.export(ctx, id, ticket)

	case "/stat":
		tb.sendMessage(id, tb.loc.T(msgStat, tb.genCnt.Load(), tb.exportCnt.Load()))

	case "/smallchat":
		if len(args) > 0 {
			tb.sendMessage(id, args[0])
			return
		}
		tb.sendMessage(id, tb.loc.T(msgUsage))

	default:
		tb.sendMessage(id, tb.loc.T(msgUsage))
	}
}

func (tb *TelegramBot) handleCallback(q *telego.CallbackQuery) {
	ctx := context.Background()
	answer := tu.CallbackQuery(q.ID)
	defer func() {
		if err := tb.b.AnswerCallbackQuery(ctx, answer); err != nil {
			log.Warnf("failed to answer callback: %v", err)
		}
	}()

	if q.Message == nil || !strings.HasPrefix(q.Data, callbackRemovePrefix) {
		return
	}
	chatID := q.Message.GetChat().ID
	if !tb.allowed(chatID) {
		return
	}

	ticket := tb.sessions.Get(chatID)
	if err := ticket.Remove(strings.TrimPrefix(q.Data, callbackRemovePrefix)); err != nil {
		answer = answer.WithText(tb.loc.T(msgSetGone))
		return
	}
	tb.sendTicket(chatID, ticket)
}

func (tb *TelegramBot) export(ctx context.Context, id int64, ticket *Ticket) {
	sets := ticket.Sets()
	if len(sets) == 0 {
		tb.sendMessage(id, tb.loc.Notice(ErrEmptyTicket))
		return
	}
	name, b, err := tb.exporter.Bytes(sets)
	if err != nil {
		log.Errorf("이미지 생성 실패: %v", err)
		tb.sendMessage(id, tb.loc.Notice(err))
		return
	}
	doc := tu.Document(tu.ID(id), tu.File(tu.NameReader(bytes.NewReader(b), name)))
	if _, err := tb.b.SendDocument(ctx, doc); err != nil {
		log.Errorf("failed to send image: %v", err)
		tb.sendMessage(id, tb.loc.T(msgExportFailed))
		return
	}
	tb.exportCnt.Add(1)
}

func (tb *TelegramBot) sendTicket(id int64, ticket *Ticket) {
	sets := ticket.Sets()
	msg := tu.Message(tu.ID(id), ticketText(tb.loc, sets, ticket.Busy()))
	if len(sets) > 0 {
		rows := make([][]telego.InlineKeyboardButton, len(sets))
		for i, s := range sets {
			rows[i] = tu.InlineKeyboardRow(
				tu.InlineKeyboardButton(tb.loc.T(msgRemoveBtn, Label(i))).
					WithCallbackData(callbackRemovePrefix + s.ID),
			)
		}
		msg = msg.WithReplyMarkup(tu.InlineKeyboard(rows...))
	}
	if _, err := tb.b.SendMessage(context.Background(), msg); err != nil {
		log.Errorf("failed to send message: %v", err)
	}
}

func (tb *TelegramBot) sendMessage(id int64, text string) {
	msg := tu.Message(tu.ID(id), text)
	if _, err := tb.b.SendMessage(context.Background(), msg); err != nil {
		log.Errorf("failed to send message: %v", err)
	}
}

// ticketText is the chat rendering of a ticket: one line per set with
// band coloured badges.
func ticketText(loc *Locale, sets []NumberSet, busy bool) string {
	var sb strings.Builder
	sb.WriteString("LOTTO 6/45\n")
	if len(sets) == 0 {
		sb.WriteString(loc.T(msgEmptyHint))
	}
	for i, s := range sets {
		sb.WriteString(Label(i))
		for _, n := range s.Numbers {
			fmt.Fprintf(&sb, "  %s %02d", BandOf(n).Emoji, n)
		}
		sb.WriteByte('\n')
	}
	if busy {
		sb.WriteString(loc.T(msgGenerating))
		sb.WriteByte('\n')
	}
	if len(sets) > 0 {
		sb.WriteString("\n⚡ " + loc.T(msgDisclaimer) + "\n")
		sb.WriteString(loc.T(msgGoodLuck) + " 🍀")
	}
	return sb.String()
}
