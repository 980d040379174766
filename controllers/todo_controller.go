package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placehub/placehub/forms"
	"github.com/placehub/placehub/middleware"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/utils"
)

const todosPerPage = 10

// TodoController serves the shared todo list.
type TodoController struct {
	db *gorm.DB
}

// NewTodoController creates a TodoController.
func NewTodoController(db *gorm.DB) *TodoController {
	return &TodoController{db: db}
}

// List shows all todos, newest first, with the new-todo form for signed-in
// visitors.
func (t *TodoController) List(c *gin.Context) {
	t.renderList(c, http.StatusOK, forms.TodoForm{}, forms.Errors{})
}

// Create adds a todo for the authenticated user.
func (t *TodoController) Create(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.TodoForm
	_ = c.ShouldBind(&form)
	if errs := form.Validate(); errs.Any() {
		t.renderList(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	todo := models.Todo{UserID: uid, Title: form.Title}
	if err := t.db.Create(&todo).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "success", "Todo added.")
	c.Redirect(http.StatusFound, "/todos")
}

func (t *TodoController) renderList(c *gin.Context, status int, form forms.TodoForm, errs forms.Errors) {
	var total int64
	if err := t.db.Model(&models.Todo{}).Count(&total).Error; err != nil {
		renderServerError(c, err)
		return
	}
	pg := utils.Paginate(utils.ParsePage(c.Query("page")), todosPerPage, total)

	var todos []models.Todo
	err := t.db.Preload("User").
		Order("date DESC").
		Offset(pg.Offset()).Limit(pg.PageSize).
		Find(&todos).Error
	if err != nil {
		renderServerError(c, err)
		return
	}

	render(c, status, "todos.html", gin.H{
		"Title":      "Todos",
		"Todos":      todos,
		"Pagination": pg,
		"Form":       form,
		"Errors":     errs,
	})
}

// Delete removes a todo.
func (t *TodoController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONNotFound(c, "todo not found")
		return
	}

	res := t.db.Delete(&models.Todo{}, id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete todo %d: %v", id, res.Error)
		utils.JSONError(c, "could not delete todo")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONNotFound(c, "todo not found")
		return
	}

	utils.JSONDeleted(c, id)
}
