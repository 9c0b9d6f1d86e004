// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/activity"
	"github.com/jeranaias/swapwatch/internal/config"
	"github.com/jeranaias/swapwatch/internal/loop"
	"github.com/jeranaias/swapwatch/internal/session"
	"github.com/jeranaias/swapwatch/internal/signal"
	"github.com/jeranaias/swapwatch/internal/store"
	"github.com/jeranaias/swapwatch/internal/ui/layout"
)

// ConsoleHelp lists the console commands.
const ConsoleHelp = `commands:
  status            show session, idle counter and connection
  signin [address]  start a session (random address when omitted)
  theme             switch theme through the signal channel
  lang [code]       switch language (next one when omitted)
  dismiss           close the timeout notice
  help              show this help
  quit              exit
any line, even empty, counts as activity`

// Console drives the layout from line input on a serial loop.
type Console struct {
	App  *App
	loop *loop.Loop
	log  zerolog.Logger

	outMu sync.Mutex
	out   io.Writer

	unwatch func()
	runErr  chan error
}

// NewConsole builds the app on a fresh loop. Output goes to out.
func NewConsole(cfg *config.Config, out io.Writer, log zerolog.Logger, opts Options) (*Console, error) {
	l := loop.New(loop.DefaultQueueSize, log)
	a, err := New(cfg, l, log, opts)
	if err != nil {
		return nil, err
	}
	c := &Console{App: a, loop: l, log: log, out: out, runErr: make(chan error, 1)}
	c.unwatch = a.Store.Watch(c.onChange)
	return c, nil
}

// Start runs the loop and mounts the layout.
func (c *Console) Start(ctx context.Context) error {
	go func() { c.runErr <- c.loop.Run(ctx) }()

	var mountErr error
	if !c.loop.Sync(func() {
		mountErr = c.App.Orchestrator.Mount(ctx)
		c.App.Hub.Emit(activity.KindLoad)
	}) {
		return loop.ErrStopped
	}
	if mountErr != nil {
		return mountErr
	}
	if err := c.App.WatchCatalogs(ctx, nil); err != nil {
		c.log.Warn().Err(err).Msg("catalog watch disabled")
	}
	return nil
}

// Handle processes one input line on the loop. It reports whether the user
// asked to quit or the loop has stopped.
func (c *Console) Handle(line string) (quit bool) {
	if !c.loop.Sync(func() {
		c.App.Hub.Emit(activity.KindKeyPress)
		quit = c.exec(strings.Fields(line))
	}) {
		return true
	}
	return quit
}

func (c *Console) exec(fields []string) (quit bool) {
	if len(fields) == 0 {
		return false
	}
	a := c.App
	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "status":
		c.println(strings.Join(c.statusLines(), "\n"))

	case "signin":
		addr := layout.DemoAddress()
		if len(args) > 0 {
			addr = args[0]
		}
		if a.Store.NoticeOpen() {
			c.println("dismiss the notice first")
			return false
		}
		if err := a.Store.SignIn(session.Account{Address: addr, Wallet: "console"}); err != nil {
			c.println("sign-in failed: " + err.Error())
			return false
		}
		c.println(a.Catalog.T("layout.signed_in", map[string]string{"address": shortAddress(addr)}))

	case "theme":
		a.Bus.Publish(signal.TopicSwitchTheme, nil)

	case "lang":
		code := layout.NextLanguage(a.Store.Locale().Codes(), a.Store.Language())
		if len(args) > 0 {
			code = args[0]
		}
		a.Orchestrator.SetActiveLanguage(code)
		c.println("language: " + code)

	case "dismiss":
		a.Store.CloseNotice()

	case "help", "?":
		c.println(ConsoleHelp)

	case "quit", "exit":
		return true

	default:
		c.println(fmt.Sprintf("unknown command %q, try help", cmd))
	}
	return false
}

// onChange reports store changes that have no prompt of their own.
func (c *Console) onChange(ch store.Change) {
	st := c.App.Store
	switch ch {
	case store.ChangeNotice:
		if n := st.Notice(); n.Open {
			c.println(fmt.Sprintf("\n[%s] %s\n%s", n.Title, n.Body, c.App.Catalog.T("layout.notice_dismiss", nil)))
		}
	case store.ChangeTheme:
		c.println("theme: " + string(st.Theme()))
	case store.ChangeConnection:
		c.println(c.connectionLabel())
	}
}

func (c *Console) statusLines() []string {
	a := c.App
	snap := a.Orchestrator.Watchdog().Snapshot()
	tr := a.Catalog

	sessionLine := tr.T("layout.signed_out", nil)
	if acc, ok := a.Store.Session().Current(); ok {
		sessionLine = tr.T("layout.signed_in", map[string]string{"address": acc.Short()})
	}
	lines := []string{
		sessionLine,
		fmt.Sprintf("%s (%s, %d expired)", tr.T("layout.idle", map[string]string{
			"idle":      strconv.Itoa(snap.Idle),
			"threshold": strconv.Itoa(snap.Threshold),
		}), snap.State, snap.Expirations),
		c.connectionLabel(),
		"class: " + a.Orchestrator.PresentationClass(),
	}
	if a.Store.Restricted() {
		lines = append(lines, tr.T("layout.mobile_only", nil))
	}
	if a.Store.NoticeOpen() {
		lines = append(lines, tr.T("layout.notice_dismiss", nil))
	}
	return lines
}

func (c *Console) connectionLabel() string {
	conn := c.App.Store.Connection()
	if !conn.Live {
		return c.App.Catalog.T("layout.connection_offline", nil)
	}
	return c.App.Catalog.T("layout.connection_live", map[string]string{"network": conn.NetworkVersion})
}

func (c *Console) println(s string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Close stops the loop, then runs exit hooks, unmounts and releases
// resources.
func (c *Console) Close() error {
	c.loop.Stop()
	if c.unwatch != nil {
		c.unwatch()
		c.unwatch = nil
	}
	return c.App.Shutdown()
}

func shortAddress(addr string) string {
	return session.Account{Address: addr}.Short()
}
