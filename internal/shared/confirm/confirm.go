// Package confirm は破壊的操作の前に利用者の確認を得るための仕組みを提供します。
package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled は利用者が確認を拒否したため操作が行われなかったことを表します。
var ErrCancelled = errors.New("cancelled by user")

// Confirmer は操作を続行してよいか利用者に確認します。
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Func は関数をConfirmerとして扱うためのアダプターです。
type Func func(ctx context.Context, prompt string) (bool, error)

// Confirm はfを呼び出します。
func (f Func) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Always は常に同じ回答を返すConfirmerです。HTTP経由の確認済みリクエストで使用します。
type Always bool

// Confirm は常にbool(a)を返します。
func (a Always) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// Prompt は端末でy/Nの確認を行うConfirmerです。
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt はinから回答を読み、outに質問を書き出すPromptを生成します。
// inが*bufio.Readerの場合はそのまま共有します。
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompt{in: br, out: out}
}

// Confirm は "y" または "yes" が入力された場合のみtrueを返します。既定はNoです。
func (p *Prompt) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
