package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"contenthub/internal/domain/content"
)

var (
	listType      string
	listFavorites bool
	listTag       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Элементы библиотеки",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}

		f := content.Filter{FavoritesOnly: listFavorites, Tag: listTag}
		if listType != "" {
			typ := content.Type(listType)
			if err := typ.Validate(); err != nil {
				return fmt.Errorf("тип должен быть одним из %v", content.Types)
			}
			f.Type = &typ
		}

		items := rt.App.FilterContent(f)
		if rt.JSON {
			return rt.PrintJSON(items)
		}
		if len(items) == 0 {
			fmt.Fprintln(rt.Out, "Библиотека пуста")
			return nil
		}

		w := rt.Table()
		fmt.Fprintln(w, "ID\t★\tНАЗВАНИЕ\tТИП\tТЕГИ\tСОЗДАНО")
		for _, i := range items {
			star := ""
			if i.IsFavorite {
				star = "★"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				i.ID, star, i.Name, i.Type, strings.Join(i.Tags, ","), i.CreatedAt.Local().Format(time.DateOnly))
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "только элементы типа")
	listCmd.Flags().BoolVarP(&listFavorites, "favorites", "f", false, "только избранное")
	listCmd.Flags().StringVar(&listTag, "tag", "", "только элементы с тегом")
}
