package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lemonade-stand/internal/ledger"
	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"

	"github.com/shopspring/decimal"
)

// Input limits of the decision prompts.
const (
	MaxGlasses = 1000
	MaxSigns   = 50
	MaxPrice   = 100
	MaxPlayers = 30
	MaxDay     = 99
)

const bell = "\a"

// Carry-over balances for continued games are kept within these bounds.
var (
	MinCarryOver = money.Dollars("2.00")
	MaxCarryOver = money.Dollars("10.00")
)

// Console asks the questions of the game on a line-based terminal. Every
// prompt loops until it gets an acceptable answer; end of input quits.
type Console struct {
	r *bufio.Reader
	w io.Writer

	changeUsedOn int // day on which a stand already used "change anything"
}

// NewConsole reads answers from r and writes prompts to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w}
}

func (c *Console) Name() string { return "console" }

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt asks until it gets a whole number in [lo, hi].
func (c *Console) ReadInt(ctx context.Context, prompt string, lo, hi int) (int, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if strings.Contains(line, ".") {
			c.printf("COME ON, LET'S BE REASONABLE NOW!!!\nTRY AGAIN\n")
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("COME ON, LET'S BE REASONABLE NOW!!!\nTRY AGAIN\n")
			continue
		}
		if n < lo || n > hi {
			c.printf("COME ON, BE REASONABLE!!! TRY AGAIN.\n")
			continue
		}
		return n, nil
	}
}

// YesNo asks until the answer reads as yes or no.
func (c *Console) YesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		if ans, ok := yesNoVocab.match(line); ok {
			return ans == "yes", nil
		}
		if s := strings.ToUpper(strings.TrimSpace(line)); s != "" {
			switch s[0] {
			case 'Y':
				return true, nil
			case 'N':
				return false, nil
			}
		}
		c.printf(bell)
	}
}

// Continue waits for the player to go on or stop. An empty line goes on.
func (c *Console) Continue(ctx context.Context) (bool, error) {
	for {
		c.printf("PRESS RETURN TO CONTINUE, TYPE END TO STOP...")
		line, err := c.readLine(ctx)
		if errors.Is(err, ErrQuit) {
			c.printf("\n")
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(line) == "" {
			return true, nil
		}
		if ans, ok := continueVocab.match(line); ok {
			return ans == "continue", nil
		}
	}
}

// Decide runs the three questions for stand p. Once per day a stand may
// go back and change its answers; after one stand does, nobody else is
// offered the chance that day.
func (c *Console) Decide(ctx context.Context, day *model.DayContext, p *model.PlayerState) (model.PlayerDecision, error) {
	cost := money.FromCents(day.LemonadeCostCents)
	for {
		var d model.PlayerDecision
		var glassCost decimal.Decimal
		for {
			n, err := c.ReadInt(ctx, "HOW MANY GLASSES OF LEMONADE DO YOU\nWISH TO MAKE ", 0, MaxGlasses)
			if err != nil {
				return d, err
			}
			glassCost = cost.Mul(decimal.NewFromInt(int64(n)))
			if glassCost.LessThanOrEqual(p.Assets) {
				d.GlassesToMake = n
				break
			}
			c.printf("THINK AGAIN!!! YOU HAVE ONLY %s\nIN CASH AND TO MAKE %d GLASSES OF\nLEMONADE YOU NEED %s IN CASH.\n",
				money.Format(p.Assets), n, money.Format(glassCost))
		}

		c.printf("\n")
		left := p.Assets.Sub(glassCost)
		for {
			n, err := c.ReadInt(ctx, fmt.Sprintf("HOW MANY ADVERTISING SIGNS (%s CENTS\nEACH) DO YOU WANT TO MAKE ",
				ledger.SignCost.Shift(2).String()), 0, MaxSigns)
			if err != nil {
				return d, err
			}
			if ledger.SignCost.Mul(decimal.NewFromInt(int64(n))).LessThanOrEqual(left) {
				d.SignsToMake = n
				break
			}
			c.printf("\nTHINK AGAIN, YOU HAVE ONLY %s\nIN CASH LEFT AFTER MAKING YOUR LEMONADE.\n", money.Format(left))
		}

		c.printf("\n")
		price, err := c.ReadInt(ctx, "WHAT PRICE (IN CENTS) DO YOU WISH TO\nCHARGE FOR LEMONADE ", 0, MaxPrice)
		if err != nil {
			return d, err
		}
		d.PriceCents = price

		if c.changeUsedOn == day.DayNumber {
			return d, nil
		}
		change, err := c.YesNo(ctx, "WOULD YOU LIKE TO CHANGE ANYTHING? ")
		if err != nil {
			return d, err
		}
		if !change {
			return d, nil
		}
		c.changeUsedOn = day.DayNumber
	}
}
