package handler

type ContextKey string

var (
	LocationCtx   ContextKey = "location"
	DepartmentCtx ContextKey = "department"
	EmployeeCtx   ContextKey = "employee"
	TemplateCtx   ContextKey = "template"
	DateKeyCtx    ContextKey = "dateKey"
	WeekKeysCtx   ContextKey = "weekKeys"
)
