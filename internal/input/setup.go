package input

import (
	"context"
	"strconv"
	"strings"

	"lemonade-stand/internal/money"

	"github.com/shopspring/decimal"
)

// Carry is what a returning player remembers from a previous game.
type Carry struct {
	LastDay int // 0 when the player does not remember
	Assets  []decimal.Decimal
}

// ClampCarryOver keeps a remembered balance inside the allowed range and
// rounds it to the cent. The second result is the remark to show when the
// balance had to change.
func ClampCarryOver(a decimal.Decimal) (decimal.Decimal, string) {
	switch {
	case a.LessThan(MinCarryOver):
		return MinCarryOver, "O.K. - WE'LL START YOU OUT WITH " + money.Format(MinCarryOver)
	case a.GreaterThan(MaxCarryOver):
		return MaxCarryOver, "JUST TO BE FAIR, LET'S MAKE THAT " + money.Format(MaxCarryOver)
	default:
		return money.RoundCents(a), ""
	}
}

// Title shows the welcome page and asks whether this is a new game and how
// many stands will play. A positive preset skips the player count question.
func (c *Console) Title(ctx context.Context, preset int) (newGame bool, players int, err error) {
	c.changeUsedOn = 0
	c.printf("HI! WELCOME TO LEMONSVILLE, CALIFORNIA!\n\n")
	c.printf("IN THIS SMALL TOWN, YOU ARE IN CHARGE OF\n")
	c.printf("RUNNING YOUR OWN LEMONADE STAND. YOU CAN\n")
	c.printf("COMPETE WITH AS MANY OTHER PEOPLE AS YOU\n")
	c.printf("WISH, BUT HOW MUCH PROFIT YOU MAKE IS UP\n")
	c.printf("TO YOU (THE OTHER STANDS' SALES WILL NOT\n")
	c.printf("AFFECT YOUR BUSINESS IN ANY WAY). IF YOU\n")
	c.printf("MAKE THE MOST MONEY, YOU'RE THE WINNER!!\n\n")
	c.printf("ARE YOU STARTING A NEW GAME? (YES OR NO)\n")

	newGame, err = c.YesNo(ctx, "TYPE YOUR ANSWER AND HIT RETURN ==> ")
	if err != nil {
		return false, 0, err
	}
	if preset > 0 {
		return newGame, preset, nil
	}
	players, err = c.PlayerCount(ctx)
	return newGame, players, err
}

// PlayerCount asks how many stands will play.
func (c *Console) PlayerCount(ctx context.Context) (int, error) {
	for {
		c.printf("HOW MANY PEOPLE WILL BE PLAYING ==> ")
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= MaxPlayers {
			return n, nil
		}
		c.printf(bell)
	}
}

// Instructions shows the two rule pages. It reports false when the player
// chose to stop instead of reading on.
func (c *Console) Instructions(ctx context.Context) (bool, error) {
	c.printf("TO MANAGE YOUR LEMONADE STAND, YOU WILL\n")
	c.printf("NEED TO MAKE THESE DECISIONS EVERY DAY:\n\n")
	c.printf("1. HOW MANY GLASSES OF LEMONADE TO MAKE (ONLY ONE BATCH IS MADE EACH MORNING)\n")
	c.printf("2. HOW MANY ADVERTISING SIGNS TO MAKE (THE SIGNS COST FIFTEEN CENTS EACH)\n")
	c.printf("3. WHAT PRICE TO CHARGE FOR EACH GLASS\n\n")
	c.printf("YOU WILL BEGIN WITH $2.00 CASH (ASSETS).\n")
	c.printf("BECAUSE YOUR MOTHER GAVE YOU SOME SUGAR,\n")
	c.printf("YOUR COST TO MAKE LEMONADE IS TWO CENTS\n")
	c.printf("A GLASS (THIS MAY CHANGE IN THE FUTURE).\n\n")
	if ok, err := c.Continue(ctx); err != nil || !ok {
		return ok, err
	}

	c.printf("YOUR EXPENSES ARE THE SUM OF THE COST OF\n")
	c.printf("THE LEMONADE AND THE COST OF THE SIGNS.\n\n")
	c.printf("YOUR PROFITS ARE THE DIFFERENCE BETWEEN\n")
	c.printf("THE INCOME FROM SALES AND YOUR EXPENSES.\n\n")
	c.printf("THE NUMBER OF GLASSES YOU SELL EACH DAY\n")
	c.printf("DEPENDS ON THE PRICE YOU CHARGE, AND ON\n")
	c.printf("THE NUMBER OF ADVERTISING SIGNS YOU USE.\n\n")
	c.printf("KEEP TRACK OF YOUR ASSETS, BECAUSE YOU\n")
	c.printf("CAN'T SPEND MORE MONEY THAN YOU HAVE!\n\n")
	return c.Continue(ctx)
}

// ContinuedGame asks a returning group for the last day played and each
// stand's balance.
func (c *Console) ContinuedGame(ctx context.Context, players int) (Carry, error) {
	c.printf("HI AGAIN! WELCOME BACK TO LEMONSVILLE!\n\n")
	c.printf("LET'S CONTINUE YOUR LAST GAME FROM WHERE\n")
	c.printf("YOU LEFT IT LAST TIME. DO YOU REMEMBER\n")
	c.printf("WHAT DAY NUMBER IT WAS? ")

	var carry Carry
	for attempts := 0; ; attempts++ {
		line, err := c.readLine(ctx)
		if err != nil {
			return carry, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= MaxDay {
			carry.LastDay = n
			break
		}
		ans, ok := yesNoVocab.match(line)
		if ok && ans == "yes" {
			c.printf("GOOD! WHAT DAY WAS IT? ")
			continue
		}
		if (ok && ans == "no") || attempts > 0 {
			break
		}
		c.printf(bell + "YES OR NO? ")
	}
	c.printf("OKAY - WE'LL START WITH DAY NO. %d\n\n", carry.LastDay+1)

	carry.Assets = make([]decimal.Decimal, players)
	for i := range carry.Assets {
		c.printf("\nPLAYER NO. %d, HOW MUCH MONEY (ASSETS)\nDID YOU HAVE? ", i+1)
		line, err := c.readLine(ctx)
		if err != nil {
			return carry, err
		}
		amount, perr := money.Parse(line)
		if perr != nil {
			amount = decimal.Zero
		}
		clamped, remark := ClampCarryOver(amount)
		if remark != "" {
			c.printf("%s\n", remark)
		}
		carry.Assets[i] = clamped
	}
	return carry, nil
}

// PlayAgain asks whether to start over after a game ends.
func (c *Console) PlayAgain(ctx context.Context) (bool, error) {
	return c.YesNo(ctx, "WOULD YOU LIKE TO PLAY AGAIN? ")
}
