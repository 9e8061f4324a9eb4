// Package stats fetches the public platform totals and drives the animated
// counters that display them on the home page.
//
//	board, err := stats.Load(ctx, client, stats.WithLanguage("en"))
//	if err != nil {
//		return err
//	}
//	defer board.Close()
//	board.Observe(ctx, 0.8) // section scrolled into view
package stats
