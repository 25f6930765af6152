package cmd

import (
	"github.com/chzyer/readline"

	"github.com/dbsmedya/doppel/internal/resolver"
	"github.com/dbsmedya/doppel/internal/types"
)

// terminalProvider reads decision tokens from the interactive terminal.
// Ctrl-C and EOF surface as errors, which the engine treats as quit.
type terminalProvider struct {
	rl *readline.Instance
}

func newTerminalProvider() (*terminalProvider, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, err
	}
	return &terminalProvider{rl: rl}, nil
}

func (p *terminalProvider) GroupDecision(types.DuplicateGroup) (string, error) {
	p.rl.SetPrompt("Choice: ")
	return p.rl.Readline()
}

func (p *terminalProvider) ConfirmDeletion(types.DeletionPlan) (string, error) {
	p.rl.SetPrompt("Confirm deletion? (y/N): ")
	return p.rl.Readline()
}

// Confirm asks a standalone yes/no question outside the per-group flow.
func (p *terminalProvider) Confirm(prompt string) (bool, error) {
	p.rl.SetPrompt(prompt + " (y/N): ")
	line, err := p.rl.Readline()
	if err != nil {
		return false, err
	}
	return resolver.Affirmative(line), nil
}

func (p *terminalProvider) Close() error {
	return p.rl.Close()
}
