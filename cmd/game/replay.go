package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/younwookim/invaders/internal/application/replay"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// runReplay plays a recording against cfg and prints the outcome to stdout
func runReplay(cfg *config.GameConfig, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	log.Printf("Replaying %s: seed=%d frames=%d", filename, data.Seed, len(data.Frames))

	res := replay.Play(cfg, *data)
	return printResult(os.Stdout, res)
}

func printResult(w io.Writer, res replay.Result) error {
	if !res.Concluded {
		_, err := fmt.Fprintf(w, "frames=%d score=%d state=unfinished\n", res.Frames, res.Score)
		return err
	}
	o := res.Outcome
	_, err := fmt.Fprintf(w, "frames=%d score=%d state=%s bonus=%d total=%d elapsed=%s\n",
		res.Frames, o.Score, o.State, o.TimeBonus, o.Total(), o.Elapsed)
	return err
}
