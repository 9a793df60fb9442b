package input

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	fd       int
	oldState *term.State
	r        *bufio.Reader
}

// OpenKeyReader puts stdin into raw mode. Callers must Close it to restore
// the terminal.
func OpenKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{fd: fd, oldState: oldState, r: bufio.NewReader(os.Stdin)}, nil
}

// Close restores the terminal state saved by OpenKeyReader.
func (k *KeyReader) Close() error {
	return term.Restore(k.fd, k.oldState)
}

// ReadKey blocks until a key is pressed and returns its binding code.
func (k *KeyReader) ReadKey() (RawInput, error) {
	code, err := readKey(k.r)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}

// readKey decodes one key from r. Escape sequences arrive in a single write,
// so a lone ESC with nothing buffered behind it is the Escape key itself.
func readKey(r *bufio.Reader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return readEscape(r)
	case b1 >= 'A' && b1 <= 'Z':
		return string(rune(b1 - 'A' + 'a')), nil
	case b1 >= 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape handles CSI (ESC [) and SS3 (ESC O) sequences.
func readEscape(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Numbered sequences such as ESC [ 2 4 ~ (F12)
	num := 0
	for b3 >= '0' && b3 <= '9' {
		num = num*10 + int(b3-'0')
		if b3, err = r.ReadByte(); err != nil {
			return "", err
		}
	}
	if b3 == '~' && num == 24 {
		return "f12", nil
	}
	return "", nil
}
