// ABOUTME: Log engine tying the daily log file to the worklog commands
// ABOUTME: Handles dump, status, remove-last and comment (start/continue/finish)
package worklog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// User-facing messages.
const (
	MsgNoWork         = "No work logged today."
	MsgForgot         = "You forgot to comment. :)"
	MsgRemovedLog     = "Removed the log (since it was empty)."
	MsgRemovedLast    = "Removed last record from the log."
	msgStarted        = "Started."
	msgContinuing     = "Continuing. "
	msgStopped        = "Stopped. "
	msgAlreadyStopped = "Already stopped. "
)

// Action identifies which handler served a request.
type Action int

const (
	ActionNone Action = iota
	ActionDump
	ActionStatus
	ActionRemove
	ActionComment
)

func (a Action) String() string {
	switch a {
	case ActionDump:
		return "dump"
	case ActionStatus:
		return "status"
	case ActionRemove:
		return "remove"
	case ActionComment:
		return "comment"
	default:
		return "none"
	}
}

// Options configures an Engine.
type Options struct {
	// Root is the directory holding the YYYY/Week WW tree.
	Root string
	// Path overrides the derived daily log path.
	Path string
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
	// Out receives user-facing output; nil discards it.
	Out io.Writer
	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger
}

// Request is one parsed invocation. Flags are checked in the order dump,
// status, remove, and the first one set wins.
type Request struct {
	Dump         bool
	Status       bool
	RemoveRecord bool
	Finish       bool
	Args         []string
}

// Result is what a request did, including the exact text shown to the user.
type Result struct {
	Action   Action
	Output   string
	Empty    bool
	Worktime string
	// Record is set when a comment was written.
	Record *Record
	// WasFinished is the breakpoint state before the request.
	WasFinished bool
	// Removed is set when a remove emptied the log and the file is gone.
	Removed bool
}

// Engine runs worklog requests against the log for a single day. The day and
// the breakpoint are fixed for the lifetime of the engine.
type Engine struct {
	file   *LogFile
	now    time.Time
	out    io.Writer
	logger *log.Logger

	bp       Breakpoint
	bpLoaded bool
}

// New creates an engine for the day of opts.Now().
func New(opts Options) *Engine {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	path := opts.Path
	if path == "" {
		path = PathFor(opts.Root, now)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Engine{
		file:   NewLogFile(path),
		now:    now,
		out:    out,
		logger: logger,
	}
}

// File returns the daily log the engine operates on.
func (e *Engine) File() *LogFile {
	return e.file
}

// Now returns the instant the engine treats as the current time.
func (e *Engine) Now() time.Time {
	return e.now
}

// Breakpoint scans the log once and caches the result.
func (e *Engine) Breakpoint() (Breakpoint, error) {
	if e.bpLoaded {
		return e.bp, nil
	}
	lines, err := e.file.Lines()
	if err != nil {
		return Breakpoint{}, err
	}
	e.bp = Scan(lines)
	e.bpLoaded = true
	e.logger.Debug("scanned log", "path", e.file.Path(), "lines", len(lines), "breakpoint", e.bp.Timestamp, "finished", e.bp.IsFinish)
	return e.bp, nil
}

// Worktime returns the elapsed-time phrase for the current breakpoint.
func (e *Engine) Worktime() (string, error) {
	bp, err := e.Breakpoint()
	if err != nil {
		return "", err
	}
	return WorktimeString(bp, e.now), nil
}

// Handle dispatches req to the first matching handler without printing.
func (e *Engine) Handle(req Request) (Result, error) {
	switch {
	case req.Dump:
		return e.Dump()
	case req.Status:
		return e.Status()
	case req.RemoveRecord:
		return e.RemoveLast()
	default:
		return e.Comment(req.Finish, req.Args)
	}
}

// Run handles req and prints its output.
func (e *Engine) Run(req Request) (Result, error) {
	res, err := e.Handle(req)
	if err != nil {
		return res, err
	}
	if _, err := io.WriteString(e.out, res.Output); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}

func (e *Engine) emptyResult(action Action) (Result, bool, error) {
	empty, err := e.file.Empty()
	if err != nil {
		return Result{}, false, err
	}
	if empty {
		return Result{Action: action, Empty: true, Output: MsgNoWork + "\n"}, true, nil
	}
	return Result{}, false, nil
}

// Dump returns the whole log followed by the current worktime phrase.
func (e *Engine) Dump() (Result, error) {
	if res, empty, err := e.emptyResult(ActionDump); err != nil || empty {
		return res, err
	}
	content, err := e.file.Content()
	if err != nil {
		return Result{}, err
	}
	worktime, err := e.Worktime()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Action:      ActionDump,
		Output:      content + worktime + "\n",
		Worktime:    worktime,
		WasFinished: e.bp.IsFinish,
	}, nil
}

// Status returns the last record and the current worktime phrase.
func (e *Engine) Status() (Result, error) {
	if res, empty, err := e.emptyResult(ActionStatus); err != nil || empty {
		return res, err
	}
	bp, err := e.Breakpoint()
	if err != nil {
		return Result{}, err
	}
	worktime := WorktimeString(bp, e.now)
	return Result{
		Action:      ActionStatus,
		Output:      bp.LastLine + "\n" + worktime + "\n",
		Worktime:    worktime,
		WasFinished: bp.IsFinish,
	}, nil
}

// RemoveLast drops the last record, deleting the log when it held only one.
func (e *Engine) RemoveLast() (Result, error) {
	if res, empty, err := e.emptyResult(ActionRemove); err != nil || empty {
		return res, err
	}
	removal, err := e.file.RemoveLast()
	if err != nil {
		return Result{}, err
	}
	e.bpLoaded = false

	if removal.FileDeleted {
		if removal.DeleteErr != nil {
			e.logger.Warn("could not delete emptied log", "path", e.file.Path(), "err", removal.DeleteErr)
		}
		return Result{
			Action:  ActionRemove,
			Output:  MsgRemovedLog + "\n",
			Removed: removal.DeleteErr == nil,
		}, nil
	}
	return Result{Action: ActionRemove, Output: MsgRemovedLast + "\n"}, nil
}

// Comment writes a start, continue or finish record. The worktime phrase is
// computed from the breakpoint as it was before the write. Only a missing
// comment is refused; blank arguments still write a record.
func (e *Engine) Comment(finish bool, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{Action: ActionComment, Output: MsgForgot + "\n"}, nil
	}
	comment := NormalizeComment(args)

	if err := e.file.Touch(); err != nil {
		return Result{}, err
	}
	bp, err := e.Breakpoint()
	if err != nil {
		return Result{}, err
	}

	marker := DetermineMarker(finish, bp.LastLine)
	worktime := WorktimeString(bp, e.now)

	rec := Record{
		Timestamp: e.now,
		Marker:    marker,
		Comment:   comment,
	}
	if marker == Finish {
		rec.Comment = finishComment(comment, worktime)
	}
	if err := e.file.Append(rec.String()); err != nil {
		return Result{}, err
	}
	e.bpLoaded = false
	e.logger.Debug("record written", "path", e.file.Path(), "marker", marker)

	return Result{
		Action:      ActionComment,
		Output:      statusLine(marker, bp.IsFinish, worktime) + "\n",
		Worktime:    worktime,
		Record:      &rec,
		WasFinished: bp.IsFinish,
	}, nil
}

func statusLine(marker Marker, wasFinished bool, worktime string) string {
	switch marker {
	case Start:
		return msgStarted
	case Continue:
		return msgContinuing + worktime
	default:
		if wasFinished {
			return msgAlreadyStopped + worktime
		}
		return msgStopped + worktime
	}
}

// Lines returns the log records as trimmed raw lines.
func (e *Engine) Lines() ([]string, error) {
	lines, err := e.file.Lines()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimRight(l, "\r\n"))
	}
	return out, nil
}
