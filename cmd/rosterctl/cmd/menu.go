package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradecraft/rosterctl/pkg/config"
	"github.com/gradecraft/rosterctl/pkg/roster"
	"github.com/gradecraft/rosterctl/pkg/session"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive roster menu",
	Long: `Run the interactive menu loop for managing the roster.

Menu options:
  1. Add a Student
  2. Remove a Student
  3. Search for a Student
  4. Display Student List
  5. Calculate Average Grade
  6. Display Students with Highest Grade
  7. Display Students with Lowest Grade
  8. Exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), sess, cfg)
	},
}

// menuLoop drives one interactive session. Input and output are plain
// reader/writer so tests can script the whole conversation.
type menuLoop struct {
	scanner *bufio.Scanner
	out     io.Writer
	sess    *session.Session
	cfg     *config.Config
}

// runMenu runs the interactive menu until the user exits or input ends.
func runMenu(in io.Reader, out io.Writer, sess *session.Session, cfg *config.Config) error {
	m := &menuLoop{
		scanner: bufio.NewScanner(in),
		out:     out,
		sess:    sess,
		cfg:     cfg,
	}

	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.printf("Invalid input. Please enter a number between 1 and 8.\n")
			continue
		}

		switch choice {
		case 1:
			m.addStudent()
		case 2:
			m.removeStudent()
		case 3:
			m.searchStudent()
		case 4:
			m.listStudents()
		case 5:
			m.printf("Average Grade: %.2f\n", m.sess.AverageGrade())
		case 6:
			m.showExtremum("Students with Highest Grade:", m.sess.TopGrade())
		case 7:
			m.showExtremum("Students with Lowest Grade:", m.sess.BottomGrade())
		case 8:
			m.printf("Exiting. Goodbye!\n")
			return nil
		default:
			m.printf("Invalid choice. Please enter a number between 1 and 8.\n")
		}
	}
}

func (m *menuLoop) printMenu() {
	m.printf("\n--- Student Roster Menu ---\n")
	m.printf("1. Add a Student\n")
	m.printf("2. Remove a Student\n")
	m.printf("3. Search for a Student\n")
	m.printf("4. Display Student List\n")
	m.printf("5. Calculate Average Grade\n")
	m.printf("6. Display Students with Highest Grade\n")
	m.printf("7. Display Students with Lowest Grade\n")
	m.printf("8. Exit\n")
	m.printf("Enter your choice: ")
}

func (m *menuLoop) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// readLine reads one input line; ok is false when input is exhausted.
func (m *menuLoop) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

// promptInt prompts until it reads a line, then parses it as an integer.
func (m *menuLoop) promptInt(prompt, invalidMsg string) (int, bool) {
	m.printf("%s", prompt)
	line, ok := m.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		m.printf("%s\n", invalidMsg)
		return 0, false
	}
	return n, true
}

// promptFloat prompts for a floating-point number.
func (m *menuLoop) promptFloat(prompt, invalidMsg string) (float64, bool) {
	m.printf("%s", prompt)
	line, ok := m.readLine()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		m.printf("%s\n", invalidMsg)
		return 0, false
	}
	return f, true
}

// addStudent collects the record fields one prompt at a time. Any
// invalid field aborts the whole add before the roster is touched.
func (m *menuLoop) addStudent() {
	id, ok := m.promptInt("Enter Student ID: ", "Invalid input. Student ID must be an integer.")
	if !ok {
		return
	}

	m.printf("Enter Full Name: ")
	name, ok := m.readLine()
	if !ok {
		return
	}
	if strings.TrimSpace(name) == "" {
		m.printf("Invalid input. Name must not be empty.\n")
		return
	}

	grade, ok := m.promptFloat("Enter Grade: ", "Invalid input. Grade must be a number.")
	if !ok {
		return
	}

	m.printf("Enter Major: ")
	major, ok := m.readLine()
	if !ok {
		return
	}

	selector, ok := m.promptInt("Enter type (1 for Undergraduate, 2 for Graduate): ",
		"Invalid input. Type must be 1 or 2.")
	if !ok {
		return
	}
	kind, err := roster.ParseKind(selector)
	if err != nil {
		m.printf("Invalid type.\n")
		return
	}

	rec := roster.NewStudentRecord(id, name, kind, grade, major)
	if err := m.sess.AddStudent(rec); err != nil {
		m.printf("%s\n", err.Error())
		return
	}
	if !m.cfg.Output.Quiet {
		m.printf("Student added successfully.\n")
	}
}

func (m *menuLoop) removeStudent() {
	id, ok := m.promptInt("Enter Student ID to remove: ", "Invalid input. Student ID must be an integer.")
	if !ok {
		return
	}
	if err := m.sess.RemoveStudent(id); err != nil {
		m.printf("%s\n", err.Error())
		return
	}
	if !m.cfg.Output.Quiet {
		m.printf("Student removed successfully.\n")
	}
}

// searchStudent asks for a name first; a blank name falls back to an id
// lookup, matching the original menu flow.
func (m *menuLoop) searchStudent() {
	m.printf("Enter Student Full Name (leave blank to search by ID): ")
	name, ok := m.readLine()
	if !ok {
		return
	}
	name = strings.TrimSpace(name)

	query := roster.FindQuery{Name: name}
	if name == "" {
		id, ok := m.promptInt("Enter Student ID: ", "Invalid input. Student ID must be an integer.")
		if !ok {
			return
		}
		query.ID = &id
	}

	rec, err := m.sess.FindStudent(query)
	if err != nil {
		m.printf("Student not found.\n")
		return
	}
	m.printf("Found Student:\n")
	if err := renderRecords(m.out, []*roster.StudentRecord{rec}, m.cfg.Output.Format); err != nil {
		m.printf("%s\n", err.Error())
	}
}

func (m *menuLoop) listStudents() {
	if m.sess.Size() == 0 {
		m.printf("No students are currently listed.\n")
		return
	}
	m.printf("List of Students:\n")

	var records []*roster.StudentRecord
	it := m.sess.ListStudents()
	for it.Next() {
		records = append(records, it.Record())
	}
	if err := renderRecords(m.out, records, m.cfg.Output.Format); err != nil {
		m.printf("%s\n", err.Error())
	}
}

func (m *menuLoop) showExtremum(header string, records []*roster.StudentRecord) {
	if len(records) == 0 {
		m.printf("No students found.\n")
		return
	}
	m.printf("%s\n", header)
	if err := renderRecords(m.out, records, m.cfg.Output.Format); err != nil {
		m.printf("%s\n", err.Error())
	}
}
