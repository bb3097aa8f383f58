package ui

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/view"
)

const pageStyle = `
body{font-family:system-ui,sans-serif;background:#f3f4f6;margin:0;color:#1f2937}
nav{background:#fff;box-shadow:0 1px 2px #0001;padding:1rem 2rem}
main{display:grid;grid-template-columns:minmax(18rem,1fr) 2fr;gap:2rem;padding:2rem}
section{background:#fff;border-radius:.5rem;padding:1.5rem;box-shadow:0 1px 2px #0001}
label{display:flex;justify-content:space-between;gap:1rem;margin-bottom:1rem}
input{flex:1;padding:.4rem;border:1px solid #d1d5db;border-radius:.25rem}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e5e7eb}
.notice{margin:1rem 2rem 0;padding:.75rem 1rem;border-radius:.25rem}
.notice.success{background:#d1fae5}
.notice.error{background:#fee2e2}
`

const draftFormID = "student-form"

func studentsPage(state view.State, notice view.Notice) Node {
	return Doctype(HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text("Student Management Dashboard")),
			StyleEl(Raw(pageStyle)),
		),
		Body(
			Nav(Strong(Text("Student Management Dashboard"))),
			noticeBanner(notice),
			Main(
				studentForm(state.Draft),
				studentTable(state),
			),
		),
	))
}

func noticeBanner(notice view.Notice) Node {
	if notice.IsZero() {
		return nil
	}
	return Div(Class("notice "+string(notice.Kind)), Attr("role", "alert"), Text(notice.Message))
}

func studentForm(d view.Draft) Node {
	title := "Create New Student"
	submit := "Create"
	id := ""
	if d.IsUpdate() {
		title = "Update Student"
		submit = "Update"
		id = strconv.FormatInt(*d.ID, 10)
	}

	return Section(
		H2(Text(title)),
		Form(
			ID(draftFormID),
			Method("post"),
			Action("/ui/students"),
			Input(Type("hidden"), Name("id"), Value(id)),
			textField("First Name", "firstName", "text", d.FirstName),
			textField("Last Name", "lastName", "text", d.LastName),
			textField("Group Name", "groupName", "text", d.GroupName),
			textField("Role", "role", "text", d.Role),
			textField("Salary", "expectedSalary", "number", d.ExpectedSalary),
			textField("Defense Date", "expectedDateOfDefense", "date", d.ExpectedDateOfDefense),
			Button(Type("submit"), Text(submit)),
			If(d.IsUpdate(), A(Href("/"), Text(" Cancel"))),
		),
	)
}

func textField(label, name, kind, value string) Node {
	return Label(
		Text(label+":"),
		Input(Type(kind), Name(name), Value(value)),
	)
}

func studentTable(state view.State) Node {
	return Section(
		H2(Text("Students")),
		Table(
			THead(Tr(
				Th(Text("ID")),
				Th(Text("First Name")),
				Th(Text("Last Name")),
				Th(Text("Group")),
				Th(Text("Role")),
				Th(Text("Salary")),
				Th(Text("Defense Date")),
				Th(Text("Actions")),
			)),
			TBody(
				If(len(state.Records) == 0, Tr(Td(ColSpan("8"), Text("No students yet")))),
				Map(state.Records, func(s models.Student) Node {
					return studentRow(s)
				}),
			),
		),
	)
}

// studentRow renders one record. Delete submits the draft form to the delete action so
// the handler sees the form as the user left it.
func studentRow(s models.Student) Node {
	return Tr(
		Td(Text(strconv.FormatInt(s.ID, 10))),
		Td(Text(s.FirstName)),
		Td(Text(s.LastName)),
		Td(Text(s.GroupName)),
		Td(Text(s.Role)),
		Td(Text(strconv.FormatInt(s.ExpectedSalary, 10))),
		Td(Text(s.ExpectedDateOfDefense.UTC().Format(view.DateLayout))),
		Td(
			A(Href(fmt.Sprintf("/?edit=%d", s.ID)), Text("Edit")),
			Text(" "),
			Button(
				Type("submit"),
				Attr("form", draftFormID),
				Attr("formaction", fmt.Sprintf("/ui/students/%d/delete", s.ID)),
				Attr("formnovalidate"),
				Attr("onclick", fmt.Sprintf("return confirm(%q)", view.MsgConfirmDelete)),
				Text("Delete"),
			),
		),
	)
}
