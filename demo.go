package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/drankou/go-sentiment/internal/config"
)

var demoSentences = []string{"VADER is smart, handsome, and funny.", // positive sentence example
	"VADER is smart, handsome, and funny!",                                                // punctuation emphasis handled correctly (sentiment intensity adjusted)
	"VADER is very smart, handsome, and funny.",                                           // booster words handled correctly (sentiment intensity adjusted)
	"VADER is VERY SMART, handsome, and FUNNY.",                                           // emphasis for ALLCAPS handled
	"VADER is VERY SMART, handsome, and FUNNY!!!",                                         // combination of signals - VADER appropriately adjusts intensity
	"VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!",                            // booster words & punctuation make this close to ceiling for score
	"VADER is not smart, handsome, nor funny.",                                            // negation sentence example
	"The book was good.",                                                                  // positive sentence
	"At least it isn't a horrible book.",                                                  // negated negative sentence with contraction
	"The book was only kind of good.",                                                     // qualified positive sentence is handled correctly (intensity adjusted)
	"The plot was good, but the characters are uncompelling and the dialog is not great.", // mixed negation sentence
	"Today SUX!", // negative slang with capitalization emphasis
	"Today only kinda sux! But I'll get by, lol", // mixed sentiment example with slang and constrastive conjunction "but"
	"Make sure you :) or :D today!",              // emoticons handled
	"Not bad at all",                             // Capitalized negation
}

var trickySentences = []string{"Sentiment analysis has never been good.",
	"Sentiment analysis has never been this good!",
	"Most automated sentiment analysis tools are shit.",
	"With VADER, sentiment analysis is the shit!",
	"Other sentiment analysis tools can be quite bad.",
	"On the other hand, VADER is quite bad ass",
	"Roger Dodger is one of the most compelling variations on this theme.",
	"Roger Dodger is at least compelling as a variation on the theme.",
	"Roger Dodger is one of the least compelling variations on this theme.",
}

func runDemo(cfg config.Config, args []string, out io.Writer) error {
	opts, _, err := parseFlags(flag.NewFlagSet("demo", flag.ContinueOnError), args, cfg)
	if err != nil {
		return err
	}
	sia, err := newAnalyzer(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "----------------------------------------------------")
	fmt.Fprintln(out, " - Analyze typical example cases, including handling of:")
	fmt.Fprintln(out, "  -- negations")
	fmt.Fprintln(out, "  -- punctuation emphasis & punctuation flooding")
	fmt.Fprintln(out, "  -- word-shape as emphasis (capitalization difference)")
	fmt.Fprintln(out, "  -- degree modifiers (intensifiers such as 'very' and dampeners such as 'kind of')")
	fmt.Fprintln(out, "  -- slang words as modifiers such as 'uber' or 'friggin' or 'kinda'")
	fmt.Fprintln(out, "  -- contrastive conjunction 'but' indicating a shift in sentiment; sentiment of later text is dominant")
	fmt.Fprintln(out, "  -- use of contractions as negations")
	fmt.Fprintln(out, "  -- sentiment laden emoticons such as :) and :D")
	fmt.Fprintln(out, "  -- sentiment laden slang words (e.g., 'sux')")
	fmt.Fprintf(out, "  -- sentiment laden initialisms and acronyms (for example: 'lol')\n\n")

	for _, sentence := range demoSentences {
		if err := printScore(out, sia, sentence, opts.JSON); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "----------------------------------------------------")
	fmt.Fprintln(out, " - Analyze examples of tricky sentences that cause trouble to other sentiment analysis tools.")
	fmt.Fprintln(out, "  -- special case idioms - e.g., 'never good' vs 'never this good', or 'bad' vs 'bad ass'.")
	fmt.Fprintf(out, "  -- special uses of 'least' as negation versus comparison\n\n")

	for _, sentence := range trickySentences {
		if err := printScore(out, sia, sentence, opts.JSON); err != nil {
			return err
		}
	}

	return nil
}
