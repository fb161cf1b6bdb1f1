package suggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Common errors
var (
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrEOF is returned when the input stream ends before the prompt is submitted
	ErrEOF = errors.New("EOF")
	// ErrInvalidLabel is returned when the label cannot be drawn on a single line
	ErrInvalidLabel = errors.New("label must be a single line")
)

// readChunkSize bounds a single read; a paste larger than this is handled
// as several inserts.
const readChunkSize = 1024

// Prompt represents an interactive terminal prompt.
type Prompt struct {
	config   Config
	renderer *renderer
	terminal terminalInterface
	state    *state
}

// Config holds the configuration for a prompt.
type Config struct {
	Label          string                // Text shown after the status symbol (set by New)
	Symbol         func(Status) string   // Status glyph (nil for the color scheme's glyphs)
	Delimiter      string                // Drawn between label and input (empty for a gray '>')
	Replace        func(string) string   // Display transform for the input (nil for StyleDefault)
	Suggest        func(string) []string // Suggestion filter (nil for NoSuggestions)
	ColorScheme    *ColorScheme          // Color scheme (nil for default)
	KeyMap         *KeyMap               // Key bindings (nil for default)
	MaxSuggestions int                   // Suggestion rows drawn at once (0 for as many as fit)
}

// Option represents a configuration option for prompt
type Option func(*Config)

// WithSymbol sets the function choosing the status glyph
func WithSymbol(symbol func(Status) string) Option {
	return func(c *Config) {
		c.Symbol = symbol
	}
}

// WithDelimiter sets the text drawn between label and input
func WithDelimiter(delimiter string) Option {
	return func(c *Config) {
		c.Delimiter = delimiter
	}
}

// WithReplace sets the display transform applied to the input.
// The transform only affects what is drawn; the submitted value is never replaced.
func WithReplace(replace func(string) string) Option {
	return func(c *Config) {
		c.Replace = replace
	}
}

// WithStyle selects a built-in display transform by name: "default",
// "password" or "invisible". Unknown names leave the input unmasked.
func WithStyle(name string) Option {
	return func(c *Config) {
		c.Replace = Styles[name]
	}
}

// WithSuggest sets the suggestion filter.
//
// Example:
//
//	suggest.New("Fruit", suggest.WithSuggest(func(input string) []string {
//		if strings.HasPrefix("apple", input) {
//			return []string{"apple"}
//		}
//		return nil
//	}))
func WithSuggest(filter func(string) []string) Option {
	return func(c *Config) {
		c.Suggest = filter
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithMaxSuggestions limits how many suggestion rows are drawn at once.
// The list scrolls to keep the selection visible.
func WithMaxSuggestions(n int) Option {
	return func(c *Config) {
		c.MaxSuggestions = n
	}
}

// New creates a new prompt with the given label and optional configuration.
//
// Example:
//
//	p, err := suggest.New("Pick a fruit",
//		suggest.WithSuggest(suggest.NewPrefixFilter([]string{"apple", "apricot", "banana"})),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	fruit, err := p.Run()
//	if errors.Is(err, suggest.ErrInterrupted) {
//		return
//	}
func New(label string, options ...Option) (*Prompt, error) {
	config := Config{}
	for _, option := range options {
		if option != nil {
			option(&config)
		}
	}
	config.Label = label

	return newFromConfig(config)
}

// Ask shows a prompt once and returns the selected suggestion.
// It returns ErrInterrupted if the user aborts with Ctrl+C.
func Ask(label string, options ...Option) (string, error) {
	p, err := New(label, options...)
	if err != nil {
		return "", err
	}
	defer p.Close()

	return p.Run()
}

func newFromConfig(config Config) (*Prompt, error) {
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}

	return newPrompt(config, terminal, newOutput()), nil
}

// validateConfig rejects labels that break the line bookkeeping and fills
// in defaults for every unset field.
func validateConfig(config *Config) error {
	if strings.ContainsAny(config.Label, "\r\n") {
		return fmt.Errorf("invalid label %q: %w", config.Label, ErrInvalidLabel)
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.Symbol == nil {
		config.Symbol = config.ColorScheme.Symbol
	}
	if config.Delimiter == "" {
		config.Delimiter = config.ColorScheme.DefaultDelimiter()
	}
	if config.Replace == nil {
		config.Replace = StyleDefault
	}
	if config.Suggest == nil {
		config.Suggest = NoSuggestions
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.MaxSuggestions < 0 {
		config.MaxSuggestions = 0
	}
	return nil
}

func newPrompt(config Config, terminal terminalInterface, output io.Writer) *Prompt {
	return &Prompt{
		config:   config,
		terminal: terminal,
		renderer: newRenderer(output, config.ColorScheme),
	}
}

// Run starts the interactive prompt and returns the selected suggestion.
//
// This is a convenience method that calls RunWithContext with a background context.
func (p *Prompt) Run() (string, error) {
	return p.RunWithContext(context.Background())
}

// RunWithContext starts the interactive prompt with context support.
//
// The prompt handles one chunk of terminal input at a time: the chunk is
// decoded, applied to the prompt state and the frame is repainted before the
// next chunk is read. Enter resolves to the suggestion under the selection
// cursor, or "" when there are no suggestions. Ctrl+C returns ErrInterrupted.
// In both cases the terminal leaves raw mode before RunWithContext returns
// and the closing frame stays on screen.
//
// The context is checked between chunks; a cancelled context closes the
// prompt as aborted and returns ctx.Err().
func (p *Prompt) RunWithContext(ctx context.Context) (string, error) {
	p.state = newState(p.config.Suggest)
	p.renderer.reset()

	if err := p.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}

	restored := false
	defer func() {
		if !restored {
			if err := p.terminal.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
			}
		}
	}()
	detach := func() error {
		restored = true
		if err := p.terminal.Restore(); err != nil {
			return fmt.Errorf("failed to restore terminal state: %w", err)
		}
		return nil
	}

	p.state.refresh()
	if err := p.render(); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	buf := make([]byte, readChunkSize)
	var pending []byte
	for {
		select {
		case <-ctx.Done():
			p.state.abort()
			return "", p.finish(detach, ctx.Err())
		default:
		}

		n, err := p.terminal.Read(buf)
		if err != nil {
			p.state.abort()
			if errors.Is(err, io.EOF) {
				return "", p.finish(detach, ErrEOF)
			}
			return "", p.finish(detach, fmt.Errorf("failed to read input: %w", err))
		}

		// A read can end in the middle of a multi-byte character; the tail
		// waits for the rest of it.
		chunk, rest := splitIncompleteRune(append(pending, buf[:n]...))
		pending = append([]byte(nil), rest...)
		if len(chunk) == 0 {
			continue
		}

		action, text := decodeKey(chunk, p.config.KeyMap)
		switch p.state.apply(action, text) {
		case outcomeRender:
			if err := p.render(); err != nil {
				return "", fmt.Errorf("failed to render: %w", err)
			}
		case outcomeBell:
			if err := p.renderer.bell(); err != nil {
				return "", fmt.Errorf("failed to ring bell: %w", err)
			}
		case outcomeSubmit:
			if err := p.finish(detach, nil); err != nil {
				return "", err
			}
			return p.state.selection(), nil
		case outcomeAbort:
			return "", p.finish(detach, ErrInterrupted)
		}
	}
}

// finish detaches from the input, draws the closing frame and returns
// cause, or the first cleanup failure when cause is nil.
func (p *Prompt) finish(detach func() error, cause error) error {
	detachErr := detach()
	if err := p.render(); err != nil && cause == nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}
	if cause != nil {
		return cause
	}
	return detachErr
}

// Close releases the terminal.
//
// It's safe to call Close multiple times.
func (p *Prompt) Close() error {
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// render draws the current state.
func (p *Prompt) render() error {
	// Size falls back to sane dimensions on error.
	width, height, _ := p.terminal.Size()
	return p.renderer.render(frame{
		prefix:      p.prefix(),
		input:       p.config.Replace(p.state.input),
		suggestions: p.state.suggestions,
		selected:    p.state.cursor,
		finished:    p.state.finished,
		width:       width,
		height:      height,
		limit:       p.config.MaxSuggestions,
	})
}

// prefix is the part of the prompt line before the input: status symbol,
// label and delimiter.
func (p *Prompt) prefix() string {
	return strings.Join([]string{
		p.config.Symbol(p.state.status()),
		p.config.Label,
		p.config.Delimiter,
	}, " ")
}
