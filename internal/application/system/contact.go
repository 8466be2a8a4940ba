package system

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/domain/geom"
)

const (
	tagBarrel = "barrel"
	tagPlayer = "player"

	contactCellSize = 32
	// contactPad grows the mirrored rectangles so that overlaps thinner than
	// one unit still share a cell; resolv maps the far edge with W-1 and H-1.
	contactPad = 1
)

// contactSpace is the broadphase for barrel/player overlap. Barrels and the
// player mirror their rectangles, padded by contactPad, into a resolv
// spatial hash; candidates are then confirmed with the exact strict AABB
// test on the unpadded rectangles.
type contactSpace struct {
	space   *resolv.Space
	player  *resolv.Object
	barrels map[*resolv.Object]*entity.Barrel
	objects map[*entity.Barrel]*resolv.Object
}

func newContactSpace(field entity.Playfield) *contactSpace {
	// Barrels fall past the bottom edge before they are removed
	w := int(field.Width) + contactCellSize
	h := int(field.Height) + 4*contactCellSize
	return &contactSpace{
		space:   resolv.NewSpace(w, h, contactCellSize, contactCellSize),
		barrels: make(map[*resolv.Object]*entity.Barrel),
		objects: make(map[*entity.Barrel]*resolv.Object),
	}
}

// mirror creates a padded resolv object covering r
func mirror(r geom.Rect, tag string) *resolv.Object {
	r = r.Expand(contactPad)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// place moves a mirrored object onto r
func place(obj *resolv.Object, r geom.Rect) {
	obj.X = r.X - contactPad
	obj.Y = r.Y - contactPad
	obj.Update()
}

func (c *contactSpace) track(b *entity.Barrel) {
	obj := mirror(b.Bounds(), tagBarrel)
	c.space.Add(obj)
	c.barrels[obj] = b
	c.objects[b] = obj
}

func (c *contactSpace) untrack(b *entity.Barrel) {
	obj, ok := c.objects[b]
	if !ok {
		return
	}
	c.space.Remove(obj)
	delete(c.barrels, obj)
	delete(c.objects, b)
}

// sync moves the mirrored objects to the barrels' current positions, in
// barrel order so that cell contents stay reproducible
func (c *contactSpace) sync(barrels []*entity.Barrel) {
	for _, b := range barrels {
		if obj, ok := c.objects[b]; ok {
			place(obj, b.Bounds())
		}
	}
}

// hit returns the first barrel overlapping the player, or nil
func (c *contactSpace) hit(p *entity.Player) *entity.Barrel {
	body := p.Bounds()
	if c.player == nil {
		c.player = mirror(body, tagPlayer)
		c.space.Add(c.player)
	}
	place(c.player, body)

	check := c.player.Check(0, 0, tagBarrel)
	if check == nil {
		return nil
	}

	for _, obj := range check.ObjectsByTags(tagBarrel) {
		b, ok := c.barrels[obj]
		if !ok || !b.Active {
			continue
		}
		if b.Bounds().Overlaps(body) {
			return b
		}
	}
	return nil
}

func (c *contactSpace) clear() {
	for b := range c.objects {
		c.untrack(b)
	}
}
