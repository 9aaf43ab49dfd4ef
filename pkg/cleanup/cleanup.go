// Package cleanup collects shutdown jobs registered during startup, the
// API server uses it to close the pgx pool when it stops.
package cleanup

import "log"

// Job names a function to run on shutdown.
type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs the registered jobs in registration order.
func CleanUp() {
	for _, j := range jobs {
		log.Printf("Cleanup job %s started...", j.Name)
		err := j.F()
		if err != nil {
			log.Printf("Job finished with error: %v", err)
		} else {
			log.Println("Cleaned")
		}
	}
}
