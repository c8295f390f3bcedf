package actions

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/database"
	"github.com/staffdesk/staffdesk/internal/prompt"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertDepartmentSQL = regexp.QuoteMeta(`INSERT INTO departments (name) VALUES (?)`)
	insertRoleSQL       = regexp.QuoteMeta(`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)`)
	insertEmployeeSQL   = regexp.QuoteMeta(`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`)
	updateRoleSQL       = regexp.QuoteMeta(`UPDATE employees SET role_id = ? WHERE id = ?`)
	selectDepartments   = `SELECT id, name FROM departments ORDER BY name`
	selectRoles         = `FROM roles\s+LEFT JOIN departments`
	selectEmployees     = `SELECT id, first_name, last_name, role_id, manager_id\s+FROM employees`
	selectDetails       = `LEFT JOIN employees AS managers`

	departmentCols = []string{"id", "name"}
	roleCols       = []string{"id", "title", "salary", "department_id", "department_name"}
	employeeCols   = []string{"id", "first_name", "last_name", "role_id", "manager_id"}
	detailCols     = []string{
		"id", "first_name", "last_name", "role_id", "manager_id",
		"role_title", "department_name", "salary", "manager_first_name", "manager_last_name",
	}
)

// newMockHandlers wires handlers to a sqlmock-backed repository
func newMockHandlers(t *testing.T, answers ...testutil.Answer) (*Handlers, sqlmock.Sqlmock, *testutil.ScriptedPrompter, *bytes.Buffer) {
	t.Helper()
	store, mock := testutil.SetupMockStore(t)
	prompter := testutil.NewScriptedPrompter(t, answers...)
	out := &bytes.Buffer{}
	return New(database.NewRepository(store), prompter, out), mock, prompter, out
}

// newSQLiteHandlers wires handlers to an in-memory SQLite store
func newSQLiteHandlers(t *testing.T, answers ...testutil.Answer) (*Handlers, *database.Store, *testutil.ScriptedPrompter, *bytes.Buffer) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	prompter := testutil.NewScriptedPrompter(t, answers...)
	out := &bytes.Buffer{}
	return New(database.NewRepository(store), prompter, out), store, prompter, out
}

func labels(choices []prompt.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Label
	}
	return out
}

// ============================================================================
// ADD DEPARTMENT
// ============================================================================

func TestAddDepartment_InsertsOnceThenRelists(t *testing.T) {
	h, mock, _, out := newMockHandlers(t, testutil.Type("Engineering"))

	mock.ExpectExec(insertDepartmentSQL).
		WithArgs("Engineering").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectDepartments).
		WillReturnRows(sqlmock.NewRows(departmentCols).AddRow(1, "Engineering"))

	err := h.AddDepartment(t.Context())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, out.String(), "Department has been added!")
	assert.Contains(t, out.String(), "Engineering")
}

func TestAddDepartment_TrimsName(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t, testutil.Type("  Legal  "))

	require.NoError(t, h.AddDepartment(t.Context()))

	departments, err := database.NewRepository(store).GetAllDepartments(t.Context())
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "Legal", departments[0].Name)
	assert.Contains(t, out.String(), "Legal")
}

func TestAddDepartment_InsertFailureIsReturned(t *testing.T) {
	h, mock, _, out := newMockHandlers(t, testutil.Type("Engineering"))

	mock.ExpectExec(insertDepartmentSQL).
		WithArgs("Engineering").
		WillReturnError(errors.New("disk full"))

	err := h.AddDepartment(t.Context())

	require.ErrorIs(t, err, database.ErrQuery)
	assert.Contains(t, err.Error(), "error adding new department")
	assert.NotContains(t, out.String(), "has been added", "no success message after a failed write")
	require.NoError(t, mock.ExpectationsWereMet())
}

// ============================================================================
// ADD ROLE
// ============================================================================

func TestAddRole_BindsTitleSalaryDepartmentInOrder(t *testing.T) {
	h, mock, prompter, _ := newMockHandlers(t,
		testutil.Type("Engineer"),
		testutil.Type("75000"),
		testutil.Pick("Engineering"),
	)

	mock.ExpectQuery(selectDepartments).
		WillReturnRows(sqlmock.NewRows(departmentCols).
			AddRow(1, "Engineering").
			AddRow(2, "Sales"))
	mock.ExpectExec(insertRoleSQL).
		WithArgs("Engineer", decimal.NewFromInt(75000), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectRoles).
		WillReturnRows(sqlmock.NewRows(roleCols).AddRow(1, "Engineer", "75000", 1, "Engineering"))

	err := h.AddRole(t.Context())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, prompter.Offered, 1)
	assert.Equal(t, []string{"Engineering", "Sales"}, labels(prompter.Offered[0]))
	id, ok := prompter.Offered[0][1].ID()
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestAddRole_NoDepartmentsAbortsBeforeSelect(t *testing.T) {
	h, mock, prompter, _ := newMockHandlers(t,
		testutil.Type("Engineer"),
		testutil.Type("75000"),
	)

	mock.ExpectQuery(selectDepartments).
		WillReturnRows(sqlmock.NewRows(departmentCols))

	err := h.AddRole(t.Context())

	require.ErrorIs(t, err, ErrNoChoices)
	assert.Empty(t, prompter.Offered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRole_DepartmentQueryFailureMeansNoInsert(t *testing.T) {
	h, mock, prompter, _ := newMockHandlers(t,
		testutil.Type("Engineer"),
		testutil.Type("75000"),
	)

	mock.ExpectQuery(selectDepartments).
		WillReturnError(errors.New("connection reset"))

	err := h.AddRole(t.Context())

	require.ErrorIs(t, err, database.ErrQuery)
	assert.Equal(t, 0, prompter.Remaining())
	// No ExpectExec was registered: any insert would have failed this check
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRole_Persists(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t,
		testutil.Type("Accountant"),
		testutil.Type("$125,000.50"),
		testutil.Pick("Finance"),
	)
	testutil.CreateTestDepartment(t, store, "Sales")
	financeID := testutil.CreateTestDepartment(t, store, "Finance")

	require.NoError(t, h.AddRole(t.Context()))

	roles, err := database.NewRepository(store).GetAllRoles(t.Context())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Accountant", roles[0].Title)
	assert.Equal(t, financeID, roles[0].DepartmentID)
	assert.True(t, decimal.RequireFromString("125000.50").Equal(roles[0].Salary))
	assert.Contains(t, out.String(), "New role has been added: Accountant")
	assert.Contains(t, out.String(), "125000.50")
}

// ============================================================================
// ADD EMPLOYEE
// ============================================================================

func TestAddEmployee_NoneManagerBindsNull(t *testing.T) {
	h, mock, prompter, _ := newMockHandlers(t,
		testutil.Type("Ada"),
		testutil.Type("Lovelace"),
		testutil.Pick("Engineer"),
		testutil.Pick(prompt.NoneLabel),
	)

	mock.ExpectQuery(selectRoles).
		WillReturnRows(sqlmock.NewRows(roleCols).AddRow(4, "Engineer", "75000", 1, "Engineering"))
	mock.ExpectQuery(selectEmployees).
		WillReturnRows(sqlmock.NewRows(employeeCols).AddRow(9, "Grace", "Hopper", 4, nil))
	mock.ExpectExec(insertEmployeeSQL).
		WithArgs("Ada", "Lovelace", 4, nil).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery(selectDetails).
		WillReturnRows(sqlmock.NewRows(detailCols))

	err := h.AddEmployee(t.Context())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, prompter.Offered, 2)
	assert.Equal(t, []string{"Hopper, Grace [ID: 9]", "None"}, labels(prompter.Offered[1]))
	assert.Nil(t, prompter.Offered[1][1].Value)
}

func TestAddEmployee_WithManagerBindsManagerID(t *testing.T) {
	h, mock, _, _ := newMockHandlers(t,
		testutil.Type("Ada"),
		testutil.Type("Lovelace"),
		testutil.Pick("Engineer"),
		testutil.Pick("Hopper, Grace [ID: 9]"),
	)

	mock.ExpectQuery(selectRoles).
		WillReturnRows(sqlmock.NewRows(roleCols).AddRow(4, "Engineer", "75000", 1, "Engineering"))
	mock.ExpectQuery(selectEmployees).
		WillReturnRows(sqlmock.NewRows(employeeCols).AddRow(9, "Grace", "Hopper", 4, nil))
	mock.ExpectExec(insertEmployeeSQL).
		WithArgs("Ada", "Lovelace", 4, 9).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery(selectDetails).
		WillReturnRows(sqlmock.NewRows(detailCols))

	require.NoError(t, h.AddEmployee(t.Context()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddEmployee_FirstEmployeeOnlyOffersNone(t *testing.T) {
	h, store, prompter, out := newSQLiteHandlers(t,
		testutil.Type("Kunal"),
		testutil.Type("Singh"),
		testutil.Pick("Accountant"),
		testutil.Pick(prompt.NoneLabel),
	)
	deptID := testutil.CreateTestDepartment(t, store, "Finance")
	testutil.CreateTestRole(t, store, "Accountant", 125000, deptID)

	require.NoError(t, h.AddEmployee(t.Context()))

	assert.Equal(t, []string{"None"}, labels(prompter.Offered[1]))
	assert.Contains(t, out.String(), "Singh, Kunal")
	assert.Contains(t, out.String(), "n/a", "employee without a manager shows the placeholder")
}

func TestAddEmployee_PromptAbortStopsTheChain(t *testing.T) {
	h, mock, _, _ := newMockHandlers(t,
		testutil.Type("Ada"),
		testutil.Fail(prompt.ErrAborted),
	)

	err := h.AddEmployee(t.Context())

	require.ErrorIs(t, err, prompt.ErrAborted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddEmployee_ManagerQueryFailureMeansNoInsert(t *testing.T) {
	h, mock, _, _ := newMockHandlers(t,
		testutil.Type("Ada"),
		testutil.Type("Lovelace"),
		testutil.Pick("Engineer"),
	)

	mock.ExpectQuery(selectRoles).
		WillReturnRows(sqlmock.NewRows(roleCols).AddRow(4, "Engineer", "75000", 1, "Engineering"))
	mock.ExpectQuery(selectEmployees).
		WillReturnError(errors.New("connection reset"))

	err := h.AddEmployee(t.Context())

	require.ErrorIs(t, err, database.ErrQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ============================================================================
// UPDATE EMPLOYEE ROLE
// ============================================================================

func TestUpdateEmployeeRole_BindsRoleThenEmployee(t *testing.T) {
	h, mock, prompter, out := newMockHandlers(t,
		testutil.Pick("Hopper, Grace [Role: Engineer] [ID: 9]"),
		testutil.Pick("Lead Engineer"),
	)

	engineer := "Engineer"
	mock.ExpectQuery(selectDetails).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(9, "Grace", "Hopper", 4, nil, engineer, "Engineering", "75000", nil, nil))
	mock.ExpectQuery(selectRoles).
		WillReturnRows(sqlmock.NewRows(roleCols).
			AddRow(4, "Engineer", "75000", 1, "Engineering").
			AddRow(5, "Lead Engineer", "150000", 1, "Engineering"))
	mock.ExpectExec(updateRoleSQL).
		WithArgs(5, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectDetails).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(9, "Grace", "Hopper", 5, nil, "Lead Engineer", "Engineering", "150000", nil, nil))

	require.NoError(t, h.UpdateEmployeeRole(t.Context()))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, prompter.Offered, 2)
	assert.Contains(t, out.String(), "Role has been updated.")
	assert.Contains(t, out.String(), "Lead Engineer")
}

func TestUpdateEmployeeRole_Persists(t *testing.T) {
	h, store, _, _ := newSQLiteHandlers(t,
		testutil.Pick("Chan, Mike [Role: Salesperson] [ID: 1]"),
		testutil.Pick("Sales Lead"),
	)
	deptID := testutil.CreateTestDepartment(t, store, "Sales")
	salespersonID := testutil.CreateTestRole(t, store, "Salesperson", 80000, deptID)
	leadID := testutil.CreateTestRole(t, store, "Sales Lead", 100000, deptID)
	testutil.CreateTestEmployee(t, store, "Mike", "Chan", salespersonID, nil)

	require.NoError(t, h.UpdateEmployeeRole(t.Context()))

	employees, err := database.NewRepository(store).GetAllEmployees(t.Context())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, leadID, employees[0].RoleID)
}

func TestUpdateEmployeeRole_NoEmployees(t *testing.T) {
	h, _, prompter, _ := newSQLiteHandlers(t)

	err := h.UpdateEmployeeRole(t.Context())

	require.ErrorIs(t, err, ErrNoChoices)
	assert.Empty(t, prompter.Titles)
}

// ============================================================================
// LISTINGS
// ============================================================================

func TestViewAllEmployees_SortedWithPlaceholder(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t)
	deptID := testutil.CreateTestDepartment(t, store, "Engineering")
	roleID := testutil.CreateTestRole(t, store, "Engineer", 120000, deptID)
	bossID := testutil.CreateTestEmployee(t, store, "Ashley", "Rodriguez", roleID, nil)
	testutil.CreateTestEmployee(t, store, "Kevin", "Tupik", roleID, &bossID)
	testutil.CreateTestEmployee(t, store, "Amy", "Allen", roleID, &bossID)

	require.NoError(t, h.ViewAllEmployees(t.Context()))

	text := out.String()
	allen := strings.Index(text, "Allen, Amy")
	rodriguez := strings.Index(text, "Rodriguez, Ashley")
	tupik := strings.Index(text, "Tupik, Kevin")
	require.True(t, allen >= 0 && rodriguez >= 0 && tupik >= 0, text)
	assert.Less(t, allen, rodriguez)
	assert.Less(t, rodriguez, tupik)

	assert.Contains(t, text, "Ashley Rodriguez", "manager name resolved through the self-join")
	assert.Contains(t, text, "n/a", "top-level employee shows the placeholder")
	assert.Contains(t, text, "120000.00")
}

func TestViewAllRoles_SortedByTitle(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t)
	deptID := testutil.CreateTestDepartment(t, store, "Legal")
	testutil.CreateTestRole(t, store, "Lawyer", 190000, deptID)
	testutil.CreateTestRole(t, store, "Legal Team Lead", 250000, deptID)
	testutil.CreateTestRole(t, store, "Clerk", 50000, deptID)

	require.NoError(t, h.ViewAllRoles(t.Context()))

	text := out.String()
	assert.Less(t, strings.Index(text, "Clerk"), strings.Index(text, "Lawyer"))
	assert.Less(t, strings.Index(text, "Lawyer"), strings.Index(text, "Legal Team Lead"))
	assert.Contains(t, text, "Viewing all roles by title:")
}

func TestViewAllDepartments_QueryFailure(t *testing.T) {
	h, mock, _, out := newMockHandlers(t)
	mock.ExpectQuery(selectDepartments).WillReturnError(errors.New("boom"))

	err := h.ViewAllDepartments(t.Context())

	require.ErrorIs(t, err, database.ErrQuery)
	assert.Empty(t, out.String(), "nothing is rendered on failure")
}

func TestViewEmployeesByManager(t *testing.T) {
	h, store, prompter, out := newSQLiteHandlers(t, testutil.Pick("Lourd, Sarah [ID: 1]"))
	deptID := testutil.CreateTestDepartment(t, store, "Legal")
	roleID := testutil.CreateTestRole(t, store, "Lawyer", 190000, deptID)
	sarahID := testutil.CreateTestEmployee(t, store, "Sarah", "Lourd", roleID, nil)
	testutil.CreateTestEmployee(t, store, "Tom", "Allen", roleID, &sarahID)
	testutil.CreateTestEmployee(t, store, "Lone", "Wolf", roleID, nil)

	require.NoError(t, h.ViewEmployeesByManager(t.Context()))

	assert.Equal(t, []string{"Lourd, Sarah [ID: 1]"}, labels(prompter.Offered[0]), "only employees with reports are offered")
	text := out.String()
	assert.Contains(t, text, "Viewing employees managed by Sarah Lourd:")
	assert.Contains(t, text, "Allen, Tom")
	assert.NotContains(t, text, "Wolf, Lone")
}

func TestViewEmployeesByDepartment(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t, testutil.Pick("Sales"))
	salesID := testutil.CreateTestDepartment(t, store, "Sales")
	legalID := testutil.CreateTestDepartment(t, store, "Legal")
	testutil.CreateTestEmployee(t, store, "Mike", "Chan", testutil.CreateTestRole(t, store, "Salesperson", 80000, salesID), nil)
	testutil.CreateTestEmployee(t, store, "Tom", "Allen", testutil.CreateTestRole(t, store, "Lawyer", 190000, legalID), nil)

	require.NoError(t, h.ViewEmployeesByDepartment(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Viewing employees in Sales:")
	assert.Contains(t, text, "Chan, Mike")
	assert.NotContains(t, text, "Allen, Tom")
}

func TestViewDepartmentBudget(t *testing.T) {
	h, store, _, out := newSQLiteHandlers(t, testutil.Pick("Engineering"))
	deptID := testutil.CreateTestDepartment(t, store, "Engineering")
	leadID := testutil.CreateTestRole(t, store, "Lead Engineer", 150000, deptID)
	engID := testutil.CreateTestRole(t, store, "Software Engineer", 120000, deptID)
	testutil.CreateTestRole(t, store, "Vacant Role", 999999, deptID)
	boss := testutil.CreateTestEmployee(t, store, "Ashley", "Rodriguez", leadID, nil)
	testutil.CreateTestEmployee(t, store, "Kevin", "Tupik", engID, &boss)
	testutil.CreateTestEmployee(t, store, "Ida", "Moss", engID, &boss)

	require.NoError(t, h.ViewDepartmentBudget(t.Context()))

	text := out.String()
	assert.Contains(t, text, "390000.00", "150000 + 2 x 120000; unfilled roles do not count")
	assert.Contains(t, text, "Engineering")
}
