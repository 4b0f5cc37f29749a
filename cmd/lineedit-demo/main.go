// Command lineedit-demo is an interactive shell exercising the lineedit
// session API: blocking and polled input, multi-line wrapping, masking,
// completion, and persistent history.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/google/shlex"
	"golang.org/x/sys/unix"

	"github.com/lixenwraith/lineedit"
)

type demoConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	HistoryLen  int    `toml:"history_len"`
	MultiLine   bool   `toml:"multiline"`
	Masked      bool   `toml:"masked"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Prompt:      "hello> ",
		HistoryFile: "history.txt",
		HistoryLen:  100,
	}
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	echoColor = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	tickColor = color.New(color.FgHiBlack)
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	multiLine := flag.Bool("multiline", false, "wrap long lines over several rows")
	async := flag.Bool("async", false, "poll for input instead of blocking")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *multiLine {
		cfg.MultiLine = true
	}

	s := lineedit.New(int(os.Stdin.Fd()), int(os.Stdout.Fd()),
		os.Getenv("TERM"), cfg.HistoryLen)
	defer s.Close()

	applyMode(s, &cfg)
	s.SetCompletionCallback(completeCommand)
	s.HistoryLoad(cfg.HistoryFile)

	for {
		var st lineedit.Status
		if *async {
			st = readPolled(s, cfg.Prompt)
		} else {
			st = s.ReadLine(cfg.Prompt)
		}
		if st != lineedit.Success {
			if st.Failed() {
				errColor.Fprintln(os.Stderr, "read failed:", st)
				os.Exit(1)
			}
			return // End or Interrupted
		}

		line := s.Text()
		switch {
		case strings.HasPrefix(line, "/"):
			runCommand(s, &cfg, line)
		case line != "":
			echoColor.Printf("echo: '%s'\n", line)
			s.HistoryAdd(line)
			s.HistorySave(cfg.HistoryFile)
		}
	}
}

// readPolled drives one edit with a poll loop, printing a timestamped
// notice around the pending line once per second to show Hide and Show
// keeping the prompt intact.
func readPolled(s *lineedit.Session, prompt string) lineedit.Status {
	st := s.EditStart(prompt)
	if st != lineedit.Success {
		return st
	}

	fds := []unix.PollFd{{Fd: int32(s.InputFd()), Events: unix.POLLIN}}
	ticks := 0
	for st = lineedit.Editing; st == lineedit.Editing; {
		fds[0].Revents = 0
		n, err := unix.Poll(fds, 1000)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			st = lineedit.BadRead
			break
		}
		if n == 0 {
			ticks++
			s.Hide()
			// Raw mode is active, so supply the carriage return explicitly
			fmt.Printf("%s\r\n", tickColor.Sprintf("[%d ticks while you type]", ticks))
			s.Show()
			continue
		}
		st = s.EditFeed()
	}

	stopSt := s.EditStop()
	if st != lineedit.Success {
		return st
	}
	return stopSt
}

var commands = []string{"/historylen", "/mask", "/unmask", "/help"}

// completeCommand offers the slash commands, plus a couple of plain words
// so completion is easy to try.
func completeCommand(line string, lc *lineedit.Completions) {
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, line) {
			lc.Add(cmd)
		}
	}
	if strings.HasPrefix("hello", line) && line != "" {
		lc.Add("hello")
		lc.Add("hello there")
	}
}

func applyMode(s *lineedit.Session, cfg *demoConfig) {
	var mode lineedit.ModeFlag
	if cfg.Masked {
		mode |= lineedit.ModeMasked
	}
	if cfg.MultiLine {
		mode |= lineedit.ModeMultiLine
	}
	s.SetMode(mode)
}

func runCommand(s *lineedit.Session, cfg *demoConfig, line string) {
	args, err := shlex.Split(line)
	if err != nil || len(args) == 0 {
		errColor.Printf("bad command line: %s\n", line)
		return
	}

	switch args[0] {
	case "/historylen":
		if len(args) != 2 {
			errColor.Println("usage: /historylen <n>")
			return
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			errColor.Printf("not a length: %s\n", args[1])
			return
		}
		s.HistorySetMaxLen(n)
	case "/mask":
		cfg.Masked = true
		applyMode(s, cfg)
	case "/unmask":
		cfg.Masked = false
		applyMode(s, cfg)
	case "/help":
		fmt.Println("commands:", strings.Join(commands, " "))
	default:
		errColor.Printf("unrecognized command: %s\n", args[0])
	}
}
