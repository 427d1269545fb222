package career

import (
	"regexp"
	"strings"
)

// resume generation is a templated placeholder, not a real model call:
// a role title is pulled out of the job description with a fixed
// pattern, known skill keywords found in it are collected, and a static
// template stands in for the generated document.

var roleTitlePattern = regexp.MustCompile(`(?i)([A-Za-z]+(\s+[A-Za-z]+){0,3})\s+Developer`)

var resumeSkillKeywords = []string{"React", "JavaScript", "TypeScript", "Node.js", "CSS", "HTML", "Next.js"}

const resumeFeedback = "This resume has been optimized to highlight your relevant skills and experience based on the job description. Key changes include highlighting your React experience and emphasizing your work with modern JavaScript frameworks."

const generatedResumeTemplate = `# Jane Doe
## Frontend Developer

### Contact
* Email: jane.doe@example.com
* LinkedIn: linkedin.com/in/janedoe
* GitHub: github.com/janedoe

### Summary
Passionate frontend developer with 3+ years of experience building responsive and user-friendly web applications. Proficient in React, TypeScript, and Next.js with a focus on creating accessible and performant user interfaces.

### Skills
* Frontend: React, Next.js, TypeScript, JavaScript, HTML, CSS
* State Management: Redux, Context API
* UI Frameworks: Tailwind CSS, Material UI
* Testing: Jest, React Testing Library
* Other: Git, CI/CD, Agile methodologies

### Experience
**Frontend Developer**, TechCorp Inc. (2021-Present)
* Led the development of a new customer dashboard using Next.js and Tailwind CSS, improving user engagement by 40%
* Implemented responsive designs for mobile and tablet views, increasing mobile usage by 25%
* Collaborated with UX designers to create accessible components following WCAG guidelines

**Junior Developer**, StartupXYZ (2020-2021)
* Developed interactive UI components using React and TypeScript
* Contributed to the company's component library, improving development efficiency

### Education
**Bachelor of Science in Computer Science**
University of Technology (2016-2020)`

// GeneratedResume is the output of the placeholder resume transform.
type GeneratedResume struct {
	Title    string
	Content  string
	Skills   []string
	Template string
	Feedback string
}

// BuildResume derives a title and skill list from the job description
// and fills the static template.
func BuildResume(jobDescription, template string) GeneratedResume {
	title := "Optimized Resume"
	if match := roleTitlePattern.FindString(jobDescription); match != "" {
		title = match + " Resume"
	}

	var skills []string
	lowered := strings.ToLower(jobDescription)
	for _, skill := range resumeSkillKeywords {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	if template == "" {
		template = "professional"
	}

	return GeneratedResume{
		Title:    title,
		Content:  generatedResumeTemplate,
		Skills:   skills,
		Template: template,
		Feedback: resumeFeedback,
	}
}
