package roster

import "time"

// Sample returns the built-in ten-candidate roster. Each call returns a fresh
// slice so callers cannot alias each other's data.
func Sample() []Candidate {
	return []Candidate{
		{ID: 1, Name: "Priya Nair", Program: "Computer Science", GPA: 3.9, Status: StatusAccepted, AppliedDate: date("2025-01-03"), Email: "priya.nair@email.com", Phone: "(616) 555-0123", Address: "Grand Rapids, MI", BirthDate: date("2003-05-12"), ExpectedGraduation: "May 2026"},
		{ID: 2, Name: "Marcus Webb", Program: "Business Admin", GPA: 3.4, Status: StatusInReview, AppliedDate: date("2025-01-08"), Email: "marcus.webb@email.com", Phone: "(616) 555-0234", Address: "Allendale, MI", BirthDate: date("2002-11-08"), ExpectedGraduation: "May 2026"},
		{ID: 3, Name: "Leila Ahmadi", Program: "Data Science", GPA: 3.7, Status: StatusInReview, AppliedDate: date("2025-01-10"), Email: "leila.ahmadi@email.com", Phone: "(616) 555-0345", Address: "Holland, MI", BirthDate: date("2003-03-22"), ExpectedGraduation: "May 2026"},
		{ID: 4, Name: "Tom Okafor", Program: "Mechanical Eng.", GPA: 2.9, Status: StatusPending, AppliedDate: date("2025-01-15"), Email: "tom.okafor@email.com", Phone: "(616) 555-0456", Address: "Muskegon, MI", BirthDate: date("2003-07-30"), ExpectedGraduation: "May 2026"},
		{ID: 5, Name: "Sophie Chen", Program: "Computer Science", GPA: 4.0, Status: StatusAccepted, AppliedDate: date("2025-01-17"), Email: "sophie.chen@email.com", Phone: "(616) 555-0567", Address: "Grand Rapids, MI", BirthDate: date("2002-09-14"), ExpectedGraduation: "May 2026"},
		{ID: 6, Name: "Diego Reyes", Program: "Psychology", GPA: 3.2, Status: StatusRejected, AppliedDate: date("2025-01-19"), Email: "diego.reyes@email.com", Phone: "(616) 555-0678", Address: "Kalamazoo, MI", BirthDate: date("2003-01-05"), ExpectedGraduation: "May 2026"},
		{ID: 7, Name: "Amara Diallo", Program: "Data Science", GPA: 3.6, Status: StatusInReview, AppliedDate: date("2025-01-22"), Email: "amara.diallo@email.com", Phone: "(616) 555-0789", Address: "Grand Rapids, MI", BirthDate: date("2002-12-19"), ExpectedGraduation: "May 2026"},
		{ID: 8, Name: "James Harrington", Program: "Business Admin", GPA: 3.1, Status: StatusPending, AppliedDate: date("2025-01-25"), Email: "james.h@email.com", Phone: "(616) 555-0890", Address: "Holland, MI", BirthDate: date("2003-04-27"), ExpectedGraduation: "May 2026"},
		{ID: 9, Name: "Yuki Tanaka", Program: "Mechanical Eng.", GPA: 3.8, Status: StatusAccepted, AppliedDate: date("2025-01-28"), Email: "yuki.tanaka@email.com", Phone: "(616) 555-0901", Address: "Muskegon, MI", BirthDate: date("2002-10-11"), ExpectedGraduation: "May 2026"},
		{ID: 10, Name: "Nina Kowalski", Program: "Psychology", GPA: 3.5, Status: StatusInReview, AppliedDate: date("2025-02-01"), Email: "nina.k@email.com", Phone: "(616) 555-1012", Address: "Allendale, MI", BirthDate: date("2003-06-16"), ExpectedGraduation: "May 2026"},
	}
}

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
