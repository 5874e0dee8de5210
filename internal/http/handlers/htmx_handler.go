// HTMX fragment handlers.
//
// These endpoints return HTML snippets rendered from the embedded template
// set. Requests that do not come from an HTMX client are redirected to the
// index page, mirroring the behavior of classic progressive-enhancement
// setups. Failures raised here flow through the same error boundary as the
// JSON API; the boundary picks the fragment shape because HX-Request is set.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tzelal/go-htmx-starter/internal/domain"
	"github.com/tzelal/go-htmx-starter/internal/http/htmx"
)

// itemForm is the urlencoded payload posted by the item creation form.
type itemForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price"`
}

// indexPath returns the canonical location of the HTMX index page.
func (h *Handlers) indexPath() string {
	return h.basePath + "/htmx/"
}

// redirectNonHTMX sends browsers that hit a fragment endpoint directly back
// to the index page. Returns true when the redirect was written.
func (h *Handlers) redirectNonHTMX(c *gin.Context) bool {
	if htmx.IsHTMX(c.Request) {
		return false
	}
	c.Redirect(http.StatusFound, h.indexPath())
	c.Abort()
	return true
}

// Index renders the full HTML index page.
func (h *Handlers) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"ProjectName": h.projectName,
		"BasePath":    h.basePath,
	})
}

// ExampleSwap returns a demo fragment for the hx-get swap button.
func (h *Handlers) ExampleSwap(c *gin.Context) {
	if h.redirectNonHTMX(c) {
		return
	}
	c.HTML(http.StatusOK, "swap.html", gin.H{
		"Now": time.Now().Format(time.RFC1123),
	})
}

// ExampleForm handles the demo form post and greets the submitted name.
func (h *Handlers) ExampleForm(c *gin.Context) {
	if h.redirectNonHTMX(c) {
		return
	}
	name := c.PostForm("name")
	if name == "" {
		name = "anonymous"
	}
	c.HTML(http.StatusOK, "form_result.html", gin.H{"Name": name})
}

// HTMXListItems renders the item list partial.
func (h *Handlers) HTMXListItems(c *gin.Context) {
	items, err := h.itemSvc.List(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	h.renderItemList(c, items)
}

// HTMXGetItem renders the detail partial for one item.
func (h *Handlers) HTMXGetItem(c *gin.Context) {
	id, okID := itemID(c)
	if !okID {
		return
	}
	item, err := h.itemSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.HTML(http.StatusOK, "item_detail.html", gin.H{
		"Item":     item,
		"BasePath": h.basePath,
	})
}

// HTMXItemForm renders the item creation form partial.
func (h *Handlers) HTMXItemForm(c *gin.Context) {
	c.HTML(http.StatusOK, "item_form.html", gin.H{"BasePath": h.basePath})
}

// HTMXCreateItem creates an item from the posted form and responds with the
// refreshed list partial.
func (h *Handlers) HTMXCreateItem(c *gin.Context) {
	if h.redirectNonHTMX(c) {
		return
	}
	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		abortErr(c, bindingError(err))
		return
	}

	_, err := h.itemSvc.Create(c.Request.Context(), domain.CreateItemRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
	})
	if err != nil {
		abortErr(c, err)
		return
	}

	items, err := h.itemSvc.List(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	h.renderItemList(c, items)
}

// HTMXDeleteItem deletes an item and returns an empty body so HTMX removes
// the element from the DOM.
func (h *Handlers) HTMXDeleteItem(c *gin.Context) {
	if h.redirectNonHTMX(c) {
		return
	}
	id, okID := itemID(c)
	if !okID {
		return
	}
	if err := h.itemSvc.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	c.String(http.StatusOK, "")
}

func (h *Handlers) renderItemList(c *gin.Context, items []domain.Item) {
	c.HTML(http.StatusOK, "item_list.html", gin.H{
		"Items":    items,
		"BasePath": h.basePath,
	})
}
