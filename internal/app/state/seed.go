package state

import (
	"time"

	"github.com/campussphere/campussphere/internal/domain/models"
)

// seed fills a fresh working set with the sample campus data every
// dashboard starts from.
func seed(s *Store) {
	s.users = []models.User{
		{ID: 1, Name: "Dr. Eleanor Vance", Email: "e.vance@university.edu", Role: models.RoleFaculty, Dept: "Computer Science", Status: models.StatusPending},
		{ID: 2, Name: "Prof. Ben Carter", Email: "b.carter@university.edu", Role: models.RoleFaculty, Dept: "Physics", Status: models.StatusPending},
		{ID: 3, Name: "Jane Doe", Email: "jane.doe@university.edu", Role: models.RoleStudent, Dept: "Computer Science", Status: models.StatusVerified},
		{ID: 4, Name: "John Smith", Email: "john.smith@university.edu", Role: models.RoleStudent, Dept: "Mechanical Eng.", Status: models.StatusVerified},
		{ID: 5, Name: "Dr. Aisha Khan", Email: "a.khan@university.edu", Role: models.RoleFaculty, Dept: "History", Status: models.StatusVerified},
		{ID: 6, Name: "Rohan M.", Email: "rohan.m@university.edu", Role: models.RoleStudent, Dept: "ECE", Status: models.StatusVerified},
		{ID: 7, Name: "Prof. David Lee", Email: "d.lee@university.edu", Role: models.RoleFaculty, Dept: "ECE", Status: models.StatusPending},
		{ID: 8, Name: "Priya S.", Email: "priya.s@university.edu", Role: models.RoleStudent, Dept: "Civil Eng.", Status: models.StatusVerified},
	}

	s.events = []models.Event{
		{
			ID: 1, Title: "Annual Tech Innovate Challenge", Category: "Technical",
			Date: "Nov 15, 2024", Time: "10:00 AM - 5:00 PM", Venue: "Engineering Building Auditorium",
			Dept: s.viewer.Dept, Eligibility: models.EligibilityDept, Featured: true, Registrations: 120,
			Description: "A campus-wide hackathon focusing on AI and sustainable solutions. Join teams to build innovative projects that can solve real-world problems.",
		},
		{
			ID: 2, Title: "Global Culture Fest", Category: "Cultural",
			Date: "Dec 01, 2024", Time: "12:00 PM - 6:00 PM", Venue: "Student Union Plaza",
			Dept: "Student Union", Eligibility: models.EligibilityAll, Registrations: 450,
			GFormLink:   "https://forms.google.com/culture-fest",
			Description: "Celebrate diversity with international food stalls, music, and dance performances from around the world.",
		},
		{
			ID: 3, Title: "Inter-Departmental Sports Day", Category: "Sports",
			Date: "Oct 28, 2024", Time: "9:00 AM - 4:00 PM", Venue: "Campus Sports Complex",
			Dept: "Sports Committee", Eligibility: models.EligibilityDept, Featured: true, Registrations: 300,
			Description: "A day of friendly competition across football, basketball, and volleyball. Come cheer for your department.",
		},
		{
			ID: 4, Title: "Future Leaders Summit", Category: "Academic",
			Date: "Nov 05, 2024", Time: "1:00 PM - 5:00 PM", Venue: "Business School Lecture Hall",
			Dept: s.viewer.Dept, Eligibility: models.EligibilityDept, Registrations: 75,
			GFormLink:   "https://forms.google.com/leadership-summit",
			Description: "Discover pathways to leadership with keynote speakers from top companies and interactive workshops.",
		},
		{
			ID: 5, Title: "Intro to Web Development", Category: "Workshop",
			Date: "Oct 10, 2024", Time: "6:00 PM - 8:00 PM", Venue: "Computer Lab 203",
			Dept: "Computer Science", Eligibility: models.EligibilityAll, Registrations: 85,
			Description: "Learn the basics of HTML, CSS, and JavaScript in this hands-on workshop. No prior experience needed.",
		},
		{
			ID: 6, Title: "Fall Semester Welcome Party", Category: "Social",
			Date: "Sep 20, 2024", Time: "5:00 PM onwards", Venue: "University Garden",
			Dept: "Student Affairs", Eligibility: models.EligibilityAll, Registrations: 200,
			Description: "Kick off the new semester with music, games, and free food.",
		},
	}

	s.posts = []models.CollabPost{
		{
			ID: 1, Title: "Teammate needed for SIH 2025", Author: "Alex Johnson", AuthorID: 2, AuthorRole: models.RoleStudent,
			Skills:      []string{"AI/ML", "Python", "IoT", "Data Science"},
			GFormLink:   "https://forms.google.com/sih-team",
			Interested:  0,
			Description: "Looking for enthusiastic and skilled developers to join our team for Smart India Hackathon 2025. We are focusing on an AI-driven solution for sustainable urban farming.",
		},
		{
			ID: 2, Title: "Web Dev for Campus Event Portal", Author: "Sarah Kim", AuthorID: 3, AuthorRole: models.RoleStudent,
			Skills:      []string{"React", "Node.js", "MongoDB", "Full-stack"},
			Description: "Seeking frontend and backend developers for a new campus event management portal.",
		},
		{
			ID: 3, Title: "Research Assistant for Robotics", Author: "Mike Chen", AuthorID: 4, AuthorRole: models.RoleFaculty,
			Skills:      []string{"Robotics", "ROS", "OpenCV", "C++"},
			Description: "Opportunity for a passionate student to assist in a cutting-edge robotics research project on robotic arm control and path planning.",
		},
		{
			ID: 4, Title: "Content Creator for Campus Blog", Author: "Emily Davis", AuthorID: 5, AuthorRole: models.RoleStudent,
			Skills:      []string{"Content Writing", "Journalism", "Photography"},
			GFormLink:   "https://forms.google.com/campus-blog",
			Description: "The Campus Chronicle is looking for creative writers and multimedia content creators to cover university events and student stories.",
		},
	}

	s.proposals = []models.Proposal{
		{ID: 1, Title: "AI Workshop for Beginners", Category: "Workshop", Date: "2024-10-15", Venue: "Computer Lab 203", Submitter: "Dr. Smith", Status: models.ProposalPending, Description: "An introductory workshop on AI and machine learning concepts."},
		{ID: 2, Title: "Cultural Dance Competition", Category: "Cultural", Date: "2024-10-10", Venue: "Main Auditorium", Submitter: "Prof. Johnson", Status: models.ProposalApproved, Description: "Inter-departmental dance competition showcasing various cultural styles."},
		{ID: 3, Title: "Startup Pitch Competition", Category: "Academic", Date: "2024-10-22", Venue: "E-Cell Hall", Submitter: "E-Cell Team", Status: models.ProposalPending, Description: "Students pitch startup ideas to a panel of alumni founders."},
	}

	s.announcements = []models.Announcement{
		{
			ID: 1, Title: "System Maintenance Notice",
			Message:  "The platform will undergo scheduled maintenance on Sunday from 2 AM to 4 AM.",
			Target:   models.TargetAll, Priority: models.PriorityImportant, Banner: true,
			CreatedAt: time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Title: "New Event Registration Process",
			Message:  "All events now require faculty approval before going live. Please plan accordingly.",
			Target:   models.TargetStudents, Priority: models.PriorityNormal,
			CreatedAt: time.Date(2024, 10, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	s.achievements = []models.Achievement{
		{ID: 1, Title: "Annual Inter-University Hackathon", Issuer: "Winner - Best Innovative Solution", Date: "March 15-17, 2024", Kind: "award"},
		{ID: 2, Title: "CampusSphere Freshers' Fest", Issuer: "Volunteer Organizer", Date: "September 22, 2023", Kind: "participation"},
		{ID: 3, Title: "National AI Symposium", Issuer: "Participant", Date: "November 5-6, 2023", Kind: "participation"},
		{ID: 4, Title: "Student Leadership Summit", Issuer: "Panel Speaker", Date: "February 10, 2024", Kind: "participation"},
		{ID: 5, Title: "University Chess Championship", Issuer: "Runner-up", Date: "April 1, 2024", Kind: "award"},
		{ID: 6, Title: "Data Science Workshop Series", Issuer: "Course Completion Certificate", Date: "Jan 15 - Feb 28, 2024", Kind: "certificate"},
		{ID: 7, Title: "Campus Blood Donation Drive", Issuer: "Event Coordinator", Date: "October 10, 2023", Kind: "participation"},
		{ID: 8, Title: "Sustainable Living Challenge", Issuer: "Team Leader", Date: "July 1-31, 2023", Kind: "participation"},
	}

	// Seed interest counts to match the original board without
	// attributing them to the viewer.
	// Interested sets reference seed users where possible; the rest
	// are ids of users outside the working set.
	seedInterest := map[int64][]int64{
		1: {3, 4, 6, 8, 101, 102, 103},
		2: {4, 6, 8, 101},
		3: {3, 4, 6, 8, 101, 102, 103, 104, 105, 106, 107, 108},
		4: {3, 4, 6, 8, 101, 102, 103, 104},
	}
	for i := range s.posts {
		s.posts[i].InterestedBy = seedInterest[s.posts[i].ID]
		s.posts[i].Interested = len(s.posts[i].InterestedBy)
	}

	s.lastID = 100
}
