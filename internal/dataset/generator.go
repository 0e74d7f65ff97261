package dataset

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Generate produces n random UnnormalizedRecords suitable for feeding the
// pipeline. Functional dependencies are kept intact on purpose: each course
// name is bound to one instructor and one department for the whole dataset,
// so extraction never trips over inconsistent source data.
func Generate(n int, seed int64) []UnnormalizedRecord {
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(seed)

	// Bind every course to a single instructor up front, iterating in the
	// fixed department order so the same seed yields the same dataset.
	// Instructor names must be unique or two departments could end up
	// sharing one, breaking the instructor -> department dependency.
	courseInstructor := make(map[string]string)
	courseDepartment := make(map[string]string)
	usedNames := make(map[string]bool)
	for _, dept := range departmentNames {
		for _, course := range departmentCourses[dept] {
			name := "Dr. " + faker.LastName()
			for usedNames[name] {
				name = "Dr. " + faker.LastName()
			}
			usedNames[name] = true
			courseInstructor[course] = name
			courseDepartment[course] = dept
		}
	}

	records := make([]UnnormalizedRecord, 0, n)
	for i := 0; i < n; i++ {
		dept := departmentNames[rng.Intn(len(departmentNames))]
		pool := departmentCourses[dept]

		// 1..4 distinct courses from the student's home department.
		k := 1 + rng.Intn(4)
		if k > len(pool) {
			k = len(pool)
		}
		perm := rng.Perm(len(pool))[:k]

		rec := UnnormalizedRecord{
			StudentID: i + 1,
			Name:      faker.Name(),
		}
		for _, idx := range perm {
			course := pool[idx]
			rec.Courses = append(rec.Courses, course)
			rec.Instructors = append(rec.Instructors, courseInstructor[course])
			rec.Departments = append(rec.Departments, courseDepartment[course])
			rec.Grades = append(rec.Grades, GradeLetters[rng.Intn(len(GradeLetters))])
		}
		records = append(records, rec)
	}
	return records
}
