// Command lineup-dump loads a festival lineup feed and prints one line per
// artist, optionally narrowed to a weekend.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ytget/lineup-browser/internal/config"
	"github.com/ytget/lineup-browser/internal/lineup"
	"github.com/ytget/lineup-browser/internal/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, loads the lineup and writes the listing to out
func run(args []string, out, errOut io.Writer) int {
	env := config.LoadEnv()

	fs := flag.NewFlagSet("lineup-dump", flag.ContinueOnError)
	fs.SetOutput(errOut)
	year := fs.String("year", firstNonEmpty(env.Year, config.DefaultLineupYear), "festival year with a built-in feed (2023, 2024)")
	url := fs.String("url", env.DataURL, "artists.json URL; overrides -year")
	weekend := fs.String("weekend", "", "weekend filter: weekend_one, weekend_two, weekend_one_only, weekend_two_only (empty for all)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	filter, err := model.ParseWeekendFilter(strings.TrimSpace(*weekend))
	if err != nil {
		fmt.Fprintf(errOut, "lineup-dump: %v\n", err)
		return 1
	}

	source := strings.TrimSpace(*url)
	if source == "" {
		var ok bool
		if source, ok = config.DataURLForYear(*year); !ok {
			fmt.Fprintf(errOut, "lineup-dump: no built-in feed for year %q\n", *year)
			return 1
		}
	}

	service := lineup.NewService(&http.Client{}, source)
	if env.HTTPTimeout > 0 {
		service.SetTimeout(env.HTTPTimeout)
	}

	artists, err := service.Load(context.Background())
	if err != nil {
		log.Printf("Error fetching artists data: %v", err)
		return 1
	}

	printArtists(out, model.FilterArtists(artists, filter))
	return 0
}

// printArtists writes one tab-separated line per artist
func printArtists(out io.Writer, artists []*model.Artist) {
	p := message.NewPrinter(language.English)
	for _, a := range artists {
		weekends := make([]string, 0, 2)
		if a.Lineup.WeekendOne {
			weekends = append(weekends, "W1")
		}
		if a.Lineup.WeekendTwo {
			weekends = append(weekends, "W2")
		}
		genre := a.PrimaryGenre()
		if genre == "" {
			genre = "-"
		}
		p.Fprintf(out, "%s\t%s\t%d\t%d\t%s\t%d\n",
			a.GetDisplayName(),
			strings.Join(weekends, "+"),
			a.Spotify.Popularity,
			a.Spotify.Followers,
			genre,
			len(a.PlayableTracks()),
		)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
