package service

import (
	"context"
	"log"
	"sync"

	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
)

type fetchTask struct {
	identity string
	page     int
}

// fetchAll fans out one fetch per (identity, page), waits for every task, and
// flattens the results in task order so record order is a pure function of
// configuration regardless of completion order. A failed task is logged and
// contributes an empty page: availability wins over completeness here, a
// single identity's outage degrades the data rather than aborting the run.
func (s *Service) fetchAll(ctx context.Context, identities []string) []games.Record {
	tasks := make([]fetchTask, 0, len(identities)*len(s.cfg.Pages))
	for _, identity := range identities {
		for _, page := range s.cfg.Pages {
			tasks = append(tasks, fetchTask{identity: identity, page: page})
		}
	}

	results := make([][]games.Record, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task fetchTask) {
			defer wg.Done()
			records, err := s.client.FetchPage(ctx, task.identity, task.page)
			if err != nil {
				log.Printf("[fetch] %s p%d sin datos (%v)", task.identity, task.page, err)
				return
			}
			results[i] = records
		}(i, task)
	}
	wg.Wait()

	var all []games.Record
	for i, page := range results {
		if s.cfg.Profile.PrintCaptureList {
			for _, g := range page {
				log.Printf("    [cap] %s p%d id=%s  %s @ %s  %s",
					tasks[i].identity, tasks[i].page, g.ID, g.AwayFullName, g.HomeFullName, g.DisplayDate)
			}
		}
		all = append(all, page...)
	}
	return all
}
