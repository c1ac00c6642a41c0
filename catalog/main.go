package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/algonquin/registrar/academic"
	"github.com/algonquin/registrar/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func ScrapeProgramLinks(catalogUrl string) ([]string, error) {
	response, err := http.Get(catalogUrl)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(catalogUrl)
	if err != nil {
		return nil, err
	}

	var links []string
	for _, link := range ParseProgramLinks(document) {
		reference, err := url.Parse(link)
		if err != nil {
			log.Println("Unable to resolve program link " + link)
			continue
		}
		links = append(links, base.ResolveReference(reference).String())
	}

	return links, nil
}

func main() {
	godotenv.Load()

	catalogUrl := os.Getenv("CATALOG_URL")
	if catalogUrl == "" {
		log.Fatal("CATALOG_URL is not set")
	}

	programLinks, err := ScrapeProgramLinks(catalogUrl)
	if err != nil {
		log.Fatal(err)
	}

	var courses []db.Course
	var prerequisites []db.Prerequisite
	var catalogMutex sync.Mutex

	var wg sync.WaitGroup
	for _, programLink := range programLinks {
		wg.Add(1)

		go func(l string) {
			defer wg.Done()

			programCourses, programPrerequisites, err := ScrapeProgramCourses(l)
			if err != nil {
				log.Println("Unable to get course outlines for program: " + l)
				return
			}

			catalogMutex.Lock()
			courses = append(courses, programCourses...)
			prerequisites = append(prerequisites, programPrerequisites...)
			catalogMutex.Unlock()
		}(programLink)
	}
	wg.Wait()

	known := make(map[string]bool)
	for _, course := range courses {
		known[course.Code] = true
	}

	// Rules pointing at courses outside the scraped catalog cannot be
	// published without breaking referential integrity.
	prerequisiteMap := make(map[string][]string)
	kept := prerequisites[:0]
	for _, prerequisite := range prerequisites {
		if !known[prerequisite.PrereqCode] {
			log.Println("Unable to resolve prerequisite course: " + prerequisite.PrereqCode)
			continue
		}
		kept = append(kept, prerequisite)
		prerequisiteMap[prerequisite.CourseCode] = append(prerequisiteMap[prerequisite.CourseCode], prerequisite.PrereqCode)
	}
	prerequisites = kept

	if err := academic.ValidatePrerequisites(prerequisiteMap); err != nil {
		log.Fatal(err)
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	if err := database.InsertCourses(courses); err != nil {
		log.Fatal(err)
	}
	if err := database.InsertPrerequisites(prerequisites); err != nil {
		log.Fatal(err)
	}
}
