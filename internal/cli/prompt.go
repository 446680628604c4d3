package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

const (
	promptFacility  = "Enter the facility to book: "
	promptDate      = "Enter the date (DD-MM-YYYY): "
	promptStartTime = "Enter the start time (HH:mm): "
	promptEndTime   = "Enter the end time (HH:mm): "
)

// errInputClosed ввод закончился (EOF)
var errInputClosed = errors.New("cli: input closed")

// Prompt интерактивный цикл бронирования поверх reader/writer
type Prompt struct {
	booker     Booker
	facilities FacilityLister
	in         *bufio.Scanner
	out        io.Writer
	logger     Logger
}

// NewPrompt создает новый цикл ввода
func NewPrompt(booker Booker, facilities FacilityLister, in io.Reader, out io.Writer, logger Logger) *Prompt {
	return &Prompt{
		booker:     booker,
		facilities: facilities,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
	}
}

// Run крутит цикл до команды exit, конца ввода или отмены контекста.
// Возвращает nil при штатном завершении.
func (p *Prompt) Run(ctx context.Context) error {
	p.logger.Info("CLI: session started")

	for {
		if err := ctx.Err(); err != nil {
			p.logger.Info("CLI: session canceled")
			return nil
		}

		err := p.step(ctx)
		if errors.Is(err, errInputClosed) {
			p.logger.Info("CLI: session finished")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// step обрабатывает одну попытку бронирования
func (p *Prompt) step(ctx context.Context) error {
	names := p.facilities.FacilityNames(ctx)
	if _, err := fmt.Fprintf(p.out, "\nAvailable Facilities: %s\n", strings.Join(names, ", ")); err != nil {
		return fmt.Errorf("cli: write: %w", err)
	}

	// Название площадки сравнивается как есть, без обрезки пробелов
	facility, err := p.ask(promptFacility)
	if err != nil {
		return err
	}

	if facility == domain.ExitCommand {
		return errInputClosed
	}

	if !slices.Contains(names, facility) {
		p.logger.Warn("CLI: unknown facility %q", facility)
		return p.println(domain.ResultInvalidFacility)
	}

	date, err := p.ask(promptDate)
	if err != nil {
		return err
	}
	startTime, err := p.ask(promptStartTime)
	if err != nil {
		return err
	}
	endTime, err := p.ask(promptEndTime)
	if err != nil {
		return err
	}

	result := p.booker.Book(ctx,
		facility,
		strings.TrimSpace(date),
		strings.TrimSpace(startTime),
		strings.TrimSpace(endTime),
	)
	return p.println(result)
}

func (p *Prompt) ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("cli: write: %w", err)
	}

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("cli: read: %w", err)
		}
		return "", errInputClosed
	}

	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func (p *Prompt) println(s string) error {
	if _, err := fmt.Fprintln(p.out, s); err != nil {
		return fmt.Errorf("cli: write: %w", err)
	}
	return nil
}
