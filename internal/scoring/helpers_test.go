package scoring

import "strings"

// strongResumeText carries every signal the assessor rewards.
func strongResumeText() string {
	var b strings.Builder
	b.WriteString("Jane Doe\njane.doe@example.com | +1 555 123 4567\n\n")
	b.WriteString("Summary\nBackend engineer focused on reliable distributed systems.\n\n")
	b.WriteString("Work Experience\n")
	for i := 0; i < 10; i++ {
		b.WriteString("- Developed and maintained services that processed customer orders at scale\n")
	}
	b.WriteString("\nEducation\nB.Sc. Computer Science, State University\n\n")
	b.WriteString("Skills\nGolang, Python, Java, PostgreSQL, Redis, Docker, Kubernetes, AWS, Terraform, Linux, Kafka, GraphQL\n\n")
	b.WriteString("Projects\n- Built a job scheduler with cron semantics\n\n")
	b.WriteString("Certifications\nAWS Certified Developer\n\n")
	b.WriteString(strings.Repeat("Delivered reliable software for customers across many teams. ", 50))
	return b.String()
}
