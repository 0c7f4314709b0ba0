package models

// Department is an academic department listed on the landing page.
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Departments is the directory shown on the landing page and served
// by the departments API.
var Departments = []Department{
	{ID: 1, Name: "Computer Science", Code: "CS"},
	{ID: 2, Name: "Electronics & Communication", Code: "ECE"},
	{ID: 3, Name: "Mechanical Engineering", Code: "ME"},
	{ID: 4, Name: "Civil Engineering", Code: "CE"},
	{ID: 5, Name: "Business Administration", Code: "BA"},
	{ID: 6, Name: "Fine Arts", Code: "FA"},
}
