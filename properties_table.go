package escher

// Numbers of the known shape properties.
const (
	PropTransformRotation              uint16 = 4
	PropProtectionLockrotation         uint16 = 119
	PropProtectionLockaspectratio      uint16 = 120
	PropProtectionLockposition         uint16 = 121
	PropProtectionLockagainstselect    uint16 = 122
	PropProtectionLockcropping         uint16 = 123
	PropProtectionLockvertices         uint16 = 124
	PropProtectionLocktext             uint16 = 125
	PropProtectionLockadjusthandles    uint16 = 126
	PropProtectionLockagainstgrouping  uint16 = 127
	PropTextTextid                     uint16 = 128
	PropTextTextleft                   uint16 = 129
	PropTextTexttop                    uint16 = 130
	PropTextTextright                  uint16 = 131
	PropTextTextbottom                 uint16 = 132
	PropTextWraptext                   uint16 = 133
	PropTextScaletext                  uint16 = 134
	PropTextAnchortext                 uint16 = 135
	PropTextTextflow                   uint16 = 136
	PropTextFontrotation               uint16 = 137
	PropTextIdofnextshape              uint16 = 138
	PropTextBidir                      uint16 = 139
	PropTextSingleclickselects         uint16 = 187
	PropTextUsehostmargins             uint16 = 188
	PropTextRotatetextwithshape        uint16 = 189
	PropTextSizeshapetofittext         uint16 = 190
	PropTextSizetexttofitshape         uint16 = 191
	PropGeoTextUnicode                 uint16 = 192
	PropGeoTextRtftext                 uint16 = 193
	PropGeoTextAlignmentoncurve        uint16 = 194
	PropGeoTextDefaultpointsize        uint16 = 195
	PropGeoTextTextspacing             uint16 = 196
	PropGeoTextFontfamilyname          uint16 = 197
	PropGeoTextReverseroworder         uint16 = 240
	PropGeoTextHastexteffect           uint16 = 241
	PropGeoTextRotatecharacters        uint16 = 242
	PropGeoTextKerncharacters          uint16 = 243
	PropGeoTextTightortrack            uint16 = 244
	PropGeoTextStretchtofitshape       uint16 = 245
	PropGeoTextCharboundingbox         uint16 = 246
	PropGeoTextScaletextonpath         uint16 = 247
	PropGeoTextStretchcharheight       uint16 = 248
	PropGeoTextNomeasurealongpath      uint16 = 249
	PropGeoTextBoldfont                uint16 = 250
	PropGeoTextItalicfont              uint16 = 251
	PropGeoTextUnderlinefont           uint16 = 252
	PropGeoTextShadowfont              uint16 = 253
	PropGeoTextSmallcapsfont           uint16 = 254
	PropGeoTextStrikethroughfont       uint16 = 255
	PropBlipCropfromtop                uint16 = 256
	PropBlipCropfrombottom             uint16 = 257
	PropBlipCropfromleft               uint16 = 258
	PropBlipCropfromright              uint16 = 259
	PropBlipBliptodisplay              uint16 = 260
	PropBlipBlipfilename               uint16 = 261
	PropBlipBlipflags                  uint16 = 262
	PropBlipTransparentcolor           uint16 = 263
	PropBlipContrastsetting            uint16 = 264
	PropBlipBrightnesssetting          uint16 = 265
	PropBlipGamma                      uint16 = 266
	PropBlipPictureid                  uint16 = 267
	PropBlipDoublemod                  uint16 = 268
	PropBlipPicturefillmod             uint16 = 269
	PropBlipPictureline                uint16 = 270
	PropBlipPrintblip                  uint16 = 271
	PropBlipPrintblipfilename          uint16 = 272
	PropBlipPrintflags                 uint16 = 273
	PropBlipNohittestpicture           uint16 = 316
	PropBlipPicturegray                uint16 = 317
	PropBlipPicturebilevel             uint16 = 318
	PropBlipPictureactive              uint16 = 319
	PropGeometryLeft                   uint16 = 320
	PropGeometryTop                    uint16 = 321
	PropGeometryRight                  uint16 = 322
	PropGeometryBottom                 uint16 = 323
	PropGeometryShapepath              uint16 = 324
	PropGeometryVertices               uint16 = 325
	PropGeometrySegmentinfo            uint16 = 326
	PropGeometryAdjustvalue            uint16 = 327
	PropGeometryAdjust2value           uint16 = 328
	PropGeometryAdjust3value           uint16 = 329
	PropGeometryAdjust4value           uint16 = 330
	PropGeometryAdjust5value           uint16 = 331
	PropGeometryAdjust6value           uint16 = 332
	PropGeometryAdjust7value           uint16 = 333
	PropGeometryAdjust8value           uint16 = 334
	PropGeometryAdjust9value           uint16 = 335
	PropGeometryAdjust10value          uint16 = 336
	PropGeometryShadowok               uint16 = 378
	PropGeometry3Dok                   uint16 = 379
	PropGeometryLineok                 uint16 = 380
	PropGeometryGeotextok              uint16 = 381
	PropGeometryFillshadeshapeok       uint16 = 382
	PropGeometryFillok                 uint16 = 383
	PropFillFilltype                   uint16 = 384
	PropFillFillcolor                  uint16 = 385
	PropFillFillopacity                uint16 = 386
	PropFillFillbackcolor              uint16 = 387
	PropFillBackopacity                uint16 = 388
	PropFillCrmod                      uint16 = 389
	PropFillPatterntexture             uint16 = 390
	PropFillBlipfilename               uint16 = 391
	PropFillBlipflags                  uint16 = 392
	PropFillWidth                      uint16 = 393
	PropFillHeight                     uint16 = 394
	PropFillAngle                      uint16 = 395
	PropFillFocus                      uint16 = 396
	PropFillToleft                     uint16 = 397
	PropFillTotop                      uint16 = 398
	PropFillToright                    uint16 = 399
	PropFillTobottom                   uint16 = 400
	PropFillRectleft                   uint16 = 401
	PropFillRecttop                    uint16 = 402
	PropFillRectright                  uint16 = 403
	PropFillRectbottom                 uint16 = 404
	PropFillDztype                     uint16 = 405
	PropFillShadepreset                uint16 = 406
	PropFillShadecolors                uint16 = 407
	PropFillOriginx                    uint16 = 408
	PropFillOriginy                    uint16 = 409
	PropFillShapeoriginx               uint16 = 410
	PropFillShapeoriginy               uint16 = 411
	PropFillShadetype                  uint16 = 412
	PropFillFilled                     uint16 = 443
	PropFillHittestfill                uint16 = 444
	PropFillShape                      uint16 = 445
	PropFillUserect                    uint16 = 446
	PropFillNofillhittest              uint16 = 447
	PropLineStyleColor                 uint16 = 448
	PropLineStyleOpacity               uint16 = 449
	PropLineStyleBackcolor             uint16 = 450
	PropLineStyleCrmod                 uint16 = 451
	PropLineStyleLinetype              uint16 = 452
	PropLineStyleFillblip              uint16 = 453
	PropLineStyleFillblipname          uint16 = 454
	PropLineStyleFillblipflags         uint16 = 455
	PropLineStyleFillwidth             uint16 = 456
	PropLineStyleFillheight            uint16 = 457
	PropLineStyleFilldztype            uint16 = 458
	PropLineStyleLinewidth             uint16 = 459
	PropLineStyleLinemiterlimit        uint16 = 460
	PropLineStyleLinestyle             uint16 = 461
	PropLineStyleLinedashing           uint16 = 462
	PropLineStyleLinedashstyle         uint16 = 463
	PropLineStyleLinestartarrowhead    uint16 = 464
	PropLineStyleLineendarrowhead      uint16 = 465
	PropLineStyleLinestartarrowwidth   uint16 = 466
	PropLineStyleLineestartarrowlength uint16 = 467
	PropLineStyleLineendarrowwidth     uint16 = 468
	PropLineStyleLineendarrowlength    uint16 = 469
	PropLineStyleLinejoinstyle         uint16 = 470
	PropLineStyleLineendcapstyle       uint16 = 471
	PropLineStyleArrowheadsok          uint16 = 507
	PropLineStyleAnyline               uint16 = 508
	PropLineStyleHitlinetest           uint16 = 509
	PropLineStyleLinefillshape         uint16 = 510
	PropLineStyleNolinedrawdash        uint16 = 511
	PropShadowStyleType                uint16 = 512
	PropShadowStyleColor               uint16 = 513
	PropShadowStyleHighlight           uint16 = 514
	PropShadowStyleCrmod               uint16 = 515
	PropShadowStyleOpacity             uint16 = 516
	PropShadowStyleOffsetx             uint16 = 517
	PropShadowStyleOffsety             uint16 = 518
	PropShadowStyleSecondoffsetx       uint16 = 519
	PropShadowStyleSecondoffsety       uint16 = 520
	PropShadowStyleScalextox           uint16 = 521
	PropShadowStyleScaleytox           uint16 = 522
	PropShadowStyleScalextoy           uint16 = 523
	PropShadowStyleScaleytoy           uint16 = 524
	PropShadowStylePerspectivex        uint16 = 525
	PropShadowStylePerspectivey        uint16 = 526
	PropShadowStyleWeight              uint16 = 527
	PropShadowStyleOriginx             uint16 = 528
	PropShadowStyleOriginy             uint16 = 529
	PropShadowStyleShadow              uint16 = 574
	PropShadowStyleShadowobsured       uint16 = 575
	PropPerspectiveType                uint16 = 576
	PropPerspectiveOffsetx             uint16 = 577
	PropPerspectiveOffsety             uint16 = 578
	PropPerspectiveScalextox           uint16 = 579
	PropPerspectiveScaleytox           uint16 = 580
	PropPerspectiveScalextoy           uint16 = 581
	PropPerspectiveScaleytoy           uint16 = 582
	PropPerspectivePerspectivex        uint16 = 583
	PropPerspectivePerspectivey        uint16 = 584
	PropPerspectiveWeight              uint16 = 585
	PropPerspectiveOriginx             uint16 = 586
	PropPerspectiveOriginy             uint16 = 587
	PropPerspectivePerspectiveon       uint16 = 639
	PropThreeDSpecularamount           uint16 = 640
	PropThreeDDiffuseamount            uint16 = 661
	PropThreeDShininess                uint16 = 662
	PropThreeDEdgethickness            uint16 = 663
	PropThreeDExtrudeforward           uint16 = 664
	PropThreeDExtrudebackward          uint16 = 665
	PropThreeDExtrudeplane             uint16 = 666
	PropThreeDExtrusioncolor           uint16 = 667
	PropThreeDCrmod                    uint16 = 648
	PropThreeD3Deffect                 uint16 = 700
	PropThreeDMetallic                 uint16 = 701
	PropThreeDUseextrusioncolor        uint16 = 702
	PropThreeDLightface                uint16 = 703
	PropThreeDStyleYrotationangle      uint16 = 704
	PropThreeDStyleXrotationangle      uint16 = 705
	PropThreeDStyleRotationaxisx       uint16 = 706
	PropThreeDStyleRotationaxisy       uint16 = 707
	PropThreeDStyleRotationaxisz       uint16 = 708
	PropThreeDStyleRotationangle       uint16 = 709
	PropThreeDStyleRotationcenterx     uint16 = 710
	PropThreeDStyleRotationcentery     uint16 = 711
	PropThreeDStyleRotationcenterz     uint16 = 712
	PropThreeDStyleRendermode          uint16 = 713
	PropThreeDStyleTolerance           uint16 = 714
	PropThreeDStyleXviewpoint          uint16 = 715
	PropThreeDStyleYviewpoint          uint16 = 716
	PropThreeDStyleZviewpoint          uint16 = 717
	PropThreeDStyleOriginx             uint16 = 718
	PropThreeDStyleOriginy             uint16 = 719
	PropThreeDStyleSkewangle           uint16 = 720
	PropThreeDStyleSkewamount          uint16 = 721
	PropThreeDStyleAmbientintensity    uint16 = 722
	PropThreeDStyleKeyx                uint16 = 723
	PropThreeDStyleKeyy                uint16 = 724
	PropThreeDStyleKeyz                uint16 = 725
	PropThreeDStyleKeyintensity        uint16 = 726
	PropThreeDStyleFillx               uint16 = 727
	PropThreeDStyleFilly               uint16 = 728
	PropThreeDStyleFillz               uint16 = 729
	PropThreeDStyleFillintensity       uint16 = 730
	PropThreeDStyleConstrainrotation   uint16 = 763
	PropThreeDStyleRotationcenterauto  uint16 = 764
	PropThreeDStyleParallel            uint16 = 765
	PropThreeDStyleKeyharsh            uint16 = 766
	PropThreeDStyleFillharsh           uint16 = 767
	PropShapeMaster                    uint16 = 769
	PropShapeConnectorstyle            uint16 = 771
	PropShapeBlackandwhitesettings     uint16 = 772
	PropShapeWmodepurebw               uint16 = 773
	PropShapeWmodebw                   uint16 = 774
	PropShapeOleicon                   uint16 = 826
	PropShapePreferrelativeresize      uint16 = 827
	PropShapeLockshapetype             uint16 = 828
	PropShapeDeleteattachedobject      uint16 = 830
	PropShapeBackgroundshape           uint16 = 831
	PropCalloutCallouttype             uint16 = 832
	PropCalloutXycalloutgap            uint16 = 833
	PropCalloutCalloutangle            uint16 = 834
	PropCalloutCalloutdroptype         uint16 = 835
	PropCalloutCalloutdropspecified    uint16 = 836
	PropCalloutCalloutlengthspecified  uint16 = 837
	PropCalloutIscallout               uint16 = 889
	PropCalloutCalloutaccentbar        uint16 = 890
	PropCalloutCallouttextborder       uint16 = 891
	PropCalloutCalloutminusx           uint16 = 892
	PropCalloutCalloutminusy           uint16 = 893
	PropCalloutDropauto                uint16 = 894
	PropCalloutLengthspecified         uint16 = 895
	PropGroupShapeShapename            uint16 = 896
	PropGroupShapeDescription          uint16 = 897
	PropGroupShapeHyperlink            uint16 = 898
	PropGroupShapeWrappolygonvertices  uint16 = 899
	PropGroupShapeWrapdistleft         uint16 = 900
	PropGroupShapeWrapdisttop          uint16 = 901
	PropGroupShapeWrapdistright        uint16 = 902
	PropGroupShapeWrapdistbottom       uint16 = 903
	PropGroupShapeRegroupid            uint16 = 904
	PropGroupShapeEditedwrap           uint16 = 953
	PropGroupShapeBehinddocument       uint16 = 954
	PropGroupShapeOndblclicknotify     uint16 = 955
	PropGroupShapeIsbutton             uint16 = 956
	PropGroupShape1Dadjustment         uint16 = 957
	PropGroupShapeHidden               uint16 = 958
	PropGroupShapePrint                uint16 = 959
)

// propertyTable maps a property number to its metadata. It is never modified
// after initialization.
var propertyTable = map[uint16]PropertyMeta{
	PropTransformRotation:              {Name: "transform.rotation", Type: TypeUnknown},
	PropProtectionLockrotation:         {Name: "protection.lockrotation", Type: TypeUnknown},
	PropProtectionLockaspectratio:      {Name: "protection.lockaspectratio", Type: TypeUnknown},
	PropProtectionLockposition:         {Name: "protection.lockposition", Type: TypeUnknown},
	PropProtectionLockagainstselect:    {Name: "protection.lockagainstselect", Type: TypeUnknown},
	PropProtectionLockcropping:         {Name: "protection.lockcropping", Type: TypeUnknown},
	PropProtectionLockvertices:         {Name: "protection.lockvertices", Type: TypeUnknown},
	PropProtectionLocktext:             {Name: "protection.locktext", Type: TypeUnknown},
	PropProtectionLockadjusthandles:    {Name: "protection.lockadjusthandles", Type: TypeUnknown},
	PropProtectionLockagainstgrouping:  {Name: "protection.lockagainstgrouping", Type: TypeBool},
	PropTextTextid:                     {Name: "text.textid", Type: TypeUnknown},
	PropTextTextleft:                   {Name: "text.textleft", Type: TypeUnknown},
	PropTextTexttop:                    {Name: "text.texttop", Type: TypeUnknown},
	PropTextTextright:                  {Name: "text.textright", Type: TypeUnknown},
	PropTextTextbottom:                 {Name: "text.textbottom", Type: TypeUnknown},
	PropTextWraptext:                   {Name: "text.wraptext", Type: TypeUnknown},
	PropTextScaletext:                  {Name: "text.scaletext", Type: TypeUnknown},
	PropTextAnchortext:                 {Name: "text.anchortext", Type: TypeUnknown},
	PropTextTextflow:                   {Name: "text.textflow", Type: TypeUnknown},
	PropTextFontrotation:               {Name: "text.fontrotation", Type: TypeUnknown},
	PropTextIdofnextshape:              {Name: "text.idofnextshape", Type: TypeUnknown},
	PropTextBidir:                      {Name: "text.bidir", Type: TypeUnknown},
	PropTextSingleclickselects:         {Name: "text.singleclickselects", Type: TypeUnknown},
	PropTextUsehostmargins:             {Name: "text.usehostmargins", Type: TypeUnknown},
	PropTextRotatetextwithshape:        {Name: "text.rotatetextwithshape", Type: TypeUnknown},
	PropTextSizeshapetofittext:         {Name: "text.sizeshapetofittext", Type: TypeUnknown},
	PropTextSizetexttofitshape:         {Name: "text.sizetexttofitshape", Type: TypeBool},
	PropGeoTextUnicode:                 {Name: "geotext.unicode", Type: TypeUnknown},
	PropGeoTextRtftext:                 {Name: "geotext.rtftext", Type: TypeUnknown},
	PropGeoTextAlignmentoncurve:        {Name: "geotext.alignmentoncurve", Type: TypeUnknown},
	PropGeoTextDefaultpointsize:        {Name: "geotext.defaultpointsize", Type: TypeUnknown},
	PropGeoTextTextspacing:             {Name: "geotext.textspacing", Type: TypeUnknown},
	PropGeoTextFontfamilyname:          {Name: "geotext.fontfamilyname", Type: TypeUnknown},
	PropGeoTextReverseroworder:         {Name: "geotext.reverseroworder", Type: TypeUnknown},
	PropGeoTextHastexteffect:           {Name: "geotext.hastexteffect", Type: TypeUnknown},
	PropGeoTextRotatecharacters:        {Name: "geotext.rotatecharacters", Type: TypeUnknown},
	PropGeoTextKerncharacters:          {Name: "geotext.kerncharacters", Type: TypeUnknown},
	PropGeoTextTightortrack:            {Name: "geotext.tightortrack", Type: TypeUnknown},
	PropGeoTextStretchtofitshape:       {Name: "geotext.stretchtofitshape", Type: TypeUnknown},
	PropGeoTextCharboundingbox:         {Name: "geotext.charboundingbox", Type: TypeUnknown},
	PropGeoTextScaletextonpath:         {Name: "geotext.scaletextonpath", Type: TypeUnknown},
	PropGeoTextStretchcharheight:       {Name: "geotext.stretchcharheight", Type: TypeUnknown},
	PropGeoTextNomeasurealongpath:      {Name: "geotext.nomeasurealongpath", Type: TypeUnknown},
	PropGeoTextBoldfont:                {Name: "geotext.boldfont", Type: TypeUnknown},
	PropGeoTextItalicfont:              {Name: "geotext.italicfont", Type: TypeUnknown},
	PropGeoTextUnderlinefont:           {Name: "geotext.underlinefont", Type: TypeUnknown},
	PropGeoTextShadowfont:              {Name: "geotext.shadowfont", Type: TypeUnknown},
	PropGeoTextSmallcapsfont:           {Name: "geotext.smallcapsfont", Type: TypeUnknown},
	PropGeoTextStrikethroughfont:       {Name: "geotext.strikethroughfont", Type: TypeUnknown},
	PropBlipCropfromtop:                {Name: "blip.cropfromtop", Type: TypeUnknown},
	PropBlipCropfrombottom:             {Name: "blip.cropfrombottom", Type: TypeUnknown},
	PropBlipCropfromleft:               {Name: "blip.cropfromleft", Type: TypeUnknown},
	PropBlipCropfromright:              {Name: "blip.cropfromright", Type: TypeUnknown},
	PropBlipBliptodisplay:              {Name: "blip.bliptodisplay", Type: TypeUnknown},
	PropBlipBlipfilename:               {Name: "blip.blipfilename", Type: TypeUnknown},
	PropBlipBlipflags:                  {Name: "blip.blipflags", Type: TypeUnknown},
	PropBlipTransparentcolor:           {Name: "blip.transparentcolor", Type: TypeUnknown},
	PropBlipContrastsetting:            {Name: "blip.contrastsetting", Type: TypeUnknown},
	PropBlipBrightnesssetting:          {Name: "blip.brightnesssetting", Type: TypeUnknown},
	PropBlipGamma:                      {Name: "blip.gamma", Type: TypeUnknown},
	PropBlipPictureid:                  {Name: "blip.pictureid", Type: TypeUnknown},
	PropBlipDoublemod:                  {Name: "blip.doublemod", Type: TypeUnknown},
	PropBlipPicturefillmod:             {Name: "blip.picturefillmod", Type: TypeUnknown},
	PropBlipPictureline:                {Name: "blip.pictureline", Type: TypeUnknown},
	PropBlipPrintblip:                  {Name: "blip.printblip", Type: TypeUnknown},
	PropBlipPrintblipfilename:          {Name: "blip.printblipfilename", Type: TypeUnknown},
	PropBlipPrintflags:                 {Name: "blip.printflags", Type: TypeUnknown},
	PropBlipNohittestpicture:           {Name: "blip.nohittestpicture", Type: TypeUnknown},
	PropBlipPicturegray:                {Name: "blip.picturegray", Type: TypeUnknown},
	PropBlipPicturebilevel:             {Name: "blip.picturebilevel", Type: TypeUnknown},
	PropBlipPictureactive:              {Name: "blip.pictureactive", Type: TypeUnknown},
	PropGeometryLeft:                   {Name: "geometry.left", Type: TypeUnknown},
	PropGeometryTop:                    {Name: "geometry.top", Type: TypeUnknown},
	PropGeometryRight:                  {Name: "geometry.right", Type: TypeUnknown},
	PropGeometryBottom:                 {Name: "geometry.bottom", Type: TypeUnknown},
	PropGeometryShapepath:              {Name: "geometry.shapepath", Type: TypeShapePath},
	PropGeometryVertices:               {Name: "geometry.vertices", Type: TypeArray},
	PropGeometrySegmentinfo:            {Name: "geometry.segmentinfo", Type: TypeArray},
	PropGeometryAdjustvalue:            {Name: "geometry.adjustvalue", Type: TypeUnknown},
	PropGeometryAdjust2value:           {Name: "geometry.adjust2value", Type: TypeUnknown},
	PropGeometryAdjust3value:           {Name: "geometry.adjust3value", Type: TypeUnknown},
	PropGeometryAdjust4value:           {Name: "geometry.adjust4value", Type: TypeUnknown},
	PropGeometryAdjust5value:           {Name: "geometry.adjust5value", Type: TypeUnknown},
	PropGeometryAdjust6value:           {Name: "geometry.adjust6value", Type: TypeUnknown},
	PropGeometryAdjust7value:           {Name: "geometry.adjust7value", Type: TypeUnknown},
	PropGeometryAdjust8value:           {Name: "geometry.adjust8value", Type: TypeUnknown},
	PropGeometryAdjust9value:           {Name: "geometry.adjust9value", Type: TypeUnknown},
	PropGeometryAdjust10value:          {Name: "geometry.adjust10value", Type: TypeUnknown},
	PropGeometryShadowok:               {Name: "geometry.shadowOK", Type: TypeUnknown},
	PropGeometry3Dok:                   {Name: "geometry.3dok", Type: TypeUnknown},
	PropGeometryLineok:                 {Name: "geometry.lineok", Type: TypeUnknown},
	PropGeometryGeotextok:              {Name: "geometry.geotextok", Type: TypeUnknown},
	PropGeometryFillshadeshapeok:       {Name: "geometry.fillshadeshapeok", Type: TypeUnknown},
	PropGeometryFillok:                 {Name: "geometry.fillok", Type: TypeBool},
	PropFillFilltype:                   {Name: "fill.filltype", Type: TypeUnknown},
	PropFillFillcolor:                  {Name: "fill.fillcolor", Type: TypeRGB},
	PropFillFillopacity:                {Name: "fill.fillopacity", Type: TypeUnknown},
	PropFillFillbackcolor:              {Name: "fill.fillbackcolor", Type: TypeRGB},
	PropFillBackopacity:                {Name: "fill.backopacity", Type: TypeUnknown},
	PropFillCrmod:                      {Name: "fill.crmod", Type: TypeUnknown},
	PropFillPatterntexture:             {Name: "fill.patterntexture", Type: TypeUnknown},
	PropFillBlipfilename:               {Name: "fill.blipfilename", Type: TypeUnknown},
	PropFillBlipflags:                  {Name: "fill.blipflags", Type: TypeUnknown},
	PropFillWidth:                      {Name: "fill.width", Type: TypeUnknown},
	PropFillHeight:                     {Name: "fill.height", Type: TypeUnknown},
	PropFillAngle:                      {Name: "fill.angle", Type: TypeUnknown},
	PropFillFocus:                      {Name: "fill.focus", Type: TypeUnknown},
	PropFillToleft:                     {Name: "fill.toleft", Type: TypeUnknown},
	PropFillTotop:                      {Name: "fill.totop", Type: TypeUnknown},
	PropFillToright:                    {Name: "fill.toright", Type: TypeUnknown},
	PropFillTobottom:                   {Name: "fill.tobottom", Type: TypeUnknown},
	PropFillRectleft:                   {Name: "fill.rectleft", Type: TypeUnknown},
	PropFillRecttop:                    {Name: "fill.recttop", Type: TypeUnknown},
	PropFillRectright:                  {Name: "fill.rectright", Type: TypeUnknown},
	PropFillRectbottom:                 {Name: "fill.rectbottom", Type: TypeUnknown},
	PropFillDztype:                     {Name: "fill.dztype", Type: TypeUnknown},
	PropFillShadepreset:                {Name: "fill.shadepreset", Type: TypeUnknown},
	PropFillShadecolors:                {Name: "fill.shadecolors", Type: TypeArray},
	PropFillOriginx:                    {Name: "fill.originx", Type: TypeUnknown},
	PropFillOriginy:                    {Name: "fill.originy", Type: TypeUnknown},
	PropFillShapeoriginx:               {Name: "fill.shapeoriginx", Type: TypeUnknown},
	PropFillShapeoriginy:               {Name: "fill.shapeoriginy", Type: TypeUnknown},
	PropFillShadetype:                  {Name: "fill.shadetype", Type: TypeUnknown},
	PropFillFilled:                     {Name: "fill.filled", Type: TypeUnknown},
	PropFillHittestfill:                {Name: "fill.hittestfill", Type: TypeUnknown},
	PropFillShape:                      {Name: "fill.shape", Type: TypeUnknown},
	PropFillUserect:                    {Name: "fill.userect", Type: TypeUnknown},
	PropFillNofillhittest:              {Name: "fill.nofillhittest", Type: TypeBool},
	PropLineStyleColor:                 {Name: "linestyle.color", Type: TypeRGB},
	PropLineStyleOpacity:               {Name: "linestyle.opacity", Type: TypeUnknown},
	PropLineStyleBackcolor:             {Name: "linestyle.backcolor", Type: TypeRGB},
	PropLineStyleCrmod:                 {Name: "linestyle.crmod", Type: TypeUnknown},
	PropLineStyleLinetype:              {Name: "linestyle.linetype", Type: TypeUnknown},
	PropLineStyleFillblip:              {Name: "linestyle.fillblip", Type: TypeUnknown},
	PropLineStyleFillblipname:          {Name: "linestyle.fillblipname", Type: TypeUnknown},
	PropLineStyleFillblipflags:         {Name: "linestyle.fillblipflags", Type: TypeUnknown},
	PropLineStyleFillwidth:             {Name: "linestyle.fillwidth", Type: TypeUnknown},
	PropLineStyleFillheight:            {Name: "linestyle.fillheight", Type: TypeUnknown},
	PropLineStyleFilldztype:            {Name: "linestyle.filldztype", Type: TypeUnknown},
	PropLineStyleLinewidth:             {Name: "linestyle.linewidth", Type: TypeUnknown},
	PropLineStyleLinemiterlimit:        {Name: "linestyle.linemiterlimit", Type: TypeUnknown},
	PropLineStyleLinestyle:             {Name: "linestyle.linestyle", Type: TypeUnknown},
	PropLineStyleLinedashing:           {Name: "linestyle.linedashing", Type: TypeUnknown},
	PropLineStyleLinedashstyle:         {Name: "linestyle.linedashstyle", Type: TypeArray},
	PropLineStyleLinestartarrowhead:    {Name: "linestyle.linestartarrowhead", Type: TypeUnknown},
	PropLineStyleLineendarrowhead:      {Name: "linestyle.lineendarrowhead", Type: TypeUnknown},
	PropLineStyleLinestartarrowwidth:   {Name: "linestyle.linestartarrowwidth", Type: TypeUnknown},
	PropLineStyleLineestartarrowlength: {Name: "linestyle.lineestartarrowlength", Type: TypeUnknown},
	PropLineStyleLineendarrowwidth:     {Name: "linestyle.lineendarrowwidth", Type: TypeUnknown},
	PropLineStyleLineendarrowlength:    {Name: "linestyle.lineendarrowlength", Type: TypeUnknown},
	PropLineStyleLinejoinstyle:         {Name: "linestyle.linejoinstyle", Type: TypeUnknown},
	PropLineStyleLineendcapstyle:       {Name: "linestyle.lineendcapstyle", Type: TypeUnknown},
	PropLineStyleArrowheadsok:          {Name: "linestyle.arrowheadsok", Type: TypeUnknown},
	PropLineStyleAnyline:               {Name: "linestyle.anyline", Type: TypeUnknown},
	PropLineStyleHitlinetest:           {Name: "linestyle.hitlinetest", Type: TypeUnknown},
	PropLineStyleLinefillshape:         {Name: "linestyle.linefillshape", Type: TypeUnknown},
	PropLineStyleNolinedrawdash:        {Name: "linestyle.nolinedrawdash", Type: TypeBool},
	PropShadowStyleType:                {Name: "shadowstyle.type", Type: TypeUnknown},
	PropShadowStyleColor:               {Name: "shadowstyle.color", Type: TypeRGB},
	PropShadowStyleHighlight:           {Name: "shadowstyle.highlight", Type: TypeUnknown},
	PropShadowStyleCrmod:               {Name: "shadowstyle.crmod", Type: TypeUnknown},
	PropShadowStyleOpacity:             {Name: "shadowstyle.opacity", Type: TypeUnknown},
	PropShadowStyleOffsetx:             {Name: "shadowstyle.offsetx", Type: TypeUnknown},
	PropShadowStyleOffsety:             {Name: "shadowstyle.offsety", Type: TypeUnknown},
	PropShadowStyleSecondoffsetx:       {Name: "shadowstyle.secondoffsetx", Type: TypeUnknown},
	PropShadowStyleSecondoffsety:       {Name: "shadowstyle.secondoffsety", Type: TypeUnknown},
	PropShadowStyleScalextox:           {Name: "shadowstyle.scalextox", Type: TypeUnknown},
	PropShadowStyleScaleytox:           {Name: "shadowstyle.scaleytox", Type: TypeUnknown},
	PropShadowStyleScalextoy:           {Name: "shadowstyle.scalextoy", Type: TypeUnknown},
	PropShadowStyleScaleytoy:           {Name: "shadowstyle.scaleytoy", Type: TypeUnknown},
	PropShadowStylePerspectivex:        {Name: "shadowstyle.perspectivex", Type: TypeUnknown},
	PropShadowStylePerspectivey:        {Name: "shadowstyle.perspectivey", Type: TypeUnknown},
	PropShadowStyleWeight:              {Name: "shadowstyle.weight", Type: TypeUnknown},
	PropShadowStyleOriginx:             {Name: "shadowstyle.originx", Type: TypeUnknown},
	PropShadowStyleOriginy:             {Name: "shadowstyle.originy", Type: TypeUnknown},
	PropShadowStyleShadow:              {Name: "shadowstyle.shadow", Type: TypeUnknown},
	PropShadowStyleShadowobsured:       {Name: "shadowstyle.shadowobsured", Type: TypeUnknown},
	PropPerspectiveType:                {Name: "perspective.type", Type: TypeUnknown},
	PropPerspectiveOffsetx:             {Name: "perspective.offsetx", Type: TypeUnknown},
	PropPerspectiveOffsety:             {Name: "perspective.offsety", Type: TypeUnknown},
	PropPerspectiveScalextox:           {Name: "perspective.scalextox", Type: TypeUnknown},
	PropPerspectiveScaleytox:           {Name: "perspective.scaleytox", Type: TypeUnknown},
	PropPerspectiveScalextoy:           {Name: "perspective.scalextoy", Type: TypeUnknown},
	PropPerspectiveScaleytoy:           {Name: "perspective.scaleytoy", Type: TypeUnknown},
	PropPerspectivePerspectivex:        {Name: "perspective.perspectivex", Type: TypeUnknown},
	PropPerspectivePerspectivey:        {Name: "perspective.perspectivey", Type: TypeUnknown},
	PropPerspectiveWeight:              {Name: "perspective.weight", Type: TypeUnknown},
	PropPerspectiveOriginx:             {Name: "perspective.originx", Type: TypeUnknown},
	PropPerspectiveOriginy:             {Name: "perspective.originy", Type: TypeUnknown},
	PropPerspectivePerspectiveon:       {Name: "perspective.perspectiveon", Type: TypeUnknown},
	PropThreeDSpecularamount:           {Name: "3d.specularamount", Type: TypeUnknown},
	PropThreeDDiffuseamount:            {Name: "3d.diffuseamount", Type: TypeUnknown},
	PropThreeDShininess:                {Name: "3d.shininess", Type: TypeUnknown},
	PropThreeDEdgethickness:            {Name: "3d.edgethickness", Type: TypeUnknown},
	PropThreeDExtrudeforward:           {Name: "3d.extrudeforward", Type: TypeUnknown},
	PropThreeDExtrudebackward:          {Name: "3d.extrudebackward", Type: TypeUnknown},
	PropThreeDExtrudeplane:             {Name: "3d.extrudeplane", Type: TypeUnknown},
	PropThreeDExtrusioncolor:           {Name: "3d.extrusioncolor", Type: TypeRGB},
	PropThreeDCrmod:                    {Name: "3d.crmod", Type: TypeUnknown},
	PropThreeD3Deffect:                 {Name: "3d.3deffect", Type: TypeUnknown},
	PropThreeDMetallic:                 {Name: "3d.metallic", Type: TypeUnknown},
	PropThreeDUseextrusioncolor:        {Name: "3d.useextrusioncolor", Type: TypeRGB},
	PropThreeDLightface:                {Name: "3d.lightface", Type: TypeUnknown},
	PropThreeDStyleYrotationangle:      {Name: "3dstyle.yrotationangle", Type: TypeUnknown},
	PropThreeDStyleXrotationangle:      {Name: "3dstyle.xrotationangle", Type: TypeUnknown},
	PropThreeDStyleRotationaxisx:       {Name: "3dstyle.rotationaxisx", Type: TypeUnknown},
	PropThreeDStyleRotationaxisy:       {Name: "3dstyle.rotationaxisy", Type: TypeUnknown},
	PropThreeDStyleRotationaxisz:       {Name: "3dstyle.rotationaxisz", Type: TypeUnknown},
	PropThreeDStyleRotationangle:       {Name: "3dstyle.rotationangle", Type: TypeUnknown},
	PropThreeDStyleRotationcenterx:     {Name: "3dstyle.rotationcenterx", Type: TypeUnknown},
	PropThreeDStyleRotationcentery:     {Name: "3dstyle.rotationcentery", Type: TypeUnknown},
	PropThreeDStyleRotationcenterz:     {Name: "3dstyle.rotationcenterz", Type: TypeUnknown},
	PropThreeDStyleRendermode:          {Name: "3dstyle.rendermode", Type: TypeUnknown},
	PropThreeDStyleTolerance:           {Name: "3dstyle.tolerance", Type: TypeUnknown},
	PropThreeDStyleXviewpoint:          {Name: "3dstyle.xviewpoint", Type: TypeUnknown},
	PropThreeDStyleYviewpoint:          {Name: "3dstyle.yviewpoint", Type: TypeUnknown},
	PropThreeDStyleZviewpoint:          {Name: "3dstyle.zviewpoint", Type: TypeUnknown},
	PropThreeDStyleOriginx:             {Name: "3dstyle.originx", Type: TypeUnknown},
	PropThreeDStyleOriginy:             {Name: "3dstyle.originy", Type: TypeUnknown},
	PropThreeDStyleSkewangle:           {Name: "3dstyle.skewangle", Type: TypeUnknown},
	PropThreeDStyleSkewamount:          {Name: "3dstyle.skewamount", Type: TypeUnknown},
	PropThreeDStyleAmbientintensity:    {Name: "3dstyle.ambientintensity", Type: TypeUnknown},
	PropThreeDStyleKeyx:                {Name: "3dstyle.keyx", Type: TypeUnknown},
	PropThreeDStyleKeyy:                {Name: "3dstyle.keyy", Type: TypeUnknown},
	PropThreeDStyleKeyz:                {Name: "3dstyle.keyz", Type: TypeUnknown},
	PropThreeDStyleKeyintensity:        {Name: "3dstyle.keyintensity", Type: TypeUnknown},
	PropThreeDStyleFillx:               {Name: "3dstyle.fillx", Type: TypeUnknown},
	PropThreeDStyleFilly:               {Name: "3dstyle.filly", Type: TypeUnknown},
	PropThreeDStyleFillz:               {Name: "3dstyle.fillz", Type: TypeUnknown},
	PropThreeDStyleFillintensity:       {Name: "3dstyle.fillintensity", Type: TypeUnknown},
	PropThreeDStyleConstrainrotation:   {Name: "3dstyle.constrainrotation", Type: TypeUnknown},
	PropThreeDStyleRotationcenterauto:  {Name: "3dstyle.rotationcenterauto", Type: TypeUnknown},
	PropThreeDStyleParallel:            {Name: "3dstyle.parallel", Type: TypeUnknown},
	PropThreeDStyleKeyharsh:            {Name: "3dstyle.keyharsh", Type: TypeUnknown},
	PropThreeDStyleFillharsh:           {Name: "3dstyle.fillharsh", Type: TypeUnknown},
	PropShapeMaster:                    {Name: "shape.master", Type: TypeUnknown},
	PropShapeConnectorstyle:            {Name: "shape.connectorstyle", Type: TypeUnknown},
	PropShapeBlackandwhitesettings:     {Name: "shape.blackandwhitesettings", Type: TypeUnknown},
	PropShapeWmodepurebw:               {Name: "shape.wmodepurebw", Type: TypeUnknown},
	PropShapeWmodebw:                   {Name: "shape.wmodebw", Type: TypeUnknown},
	PropShapeOleicon:                   {Name: "shape.oleicon", Type: TypeUnknown},
	PropShapePreferrelativeresize:      {Name: "shape.preferrelativeresize", Type: TypeUnknown},
	PropShapeLockshapetype:             {Name: "shape.lockshapetype", Type: TypeUnknown},
	PropShapeDeleteattachedobject:      {Name: "shape.deleteattachedobject", Type: TypeUnknown},
	PropShapeBackgroundshape:           {Name: "shape.backgroundshape", Type: TypeUnknown},
	PropCalloutCallouttype:             {Name: "callout.callouttype", Type: TypeUnknown},
	PropCalloutXycalloutgap:            {Name: "callout.xycalloutgap", Type: TypeUnknown},
	PropCalloutCalloutangle:            {Name: "callout.calloutangle", Type: TypeUnknown},
	PropCalloutCalloutdroptype:         {Name: "callout.calloutdroptype", Type: TypeUnknown},
	PropCalloutCalloutdropspecified:    {Name: "callout.calloutdropspecified", Type: TypeUnknown},
	PropCalloutCalloutlengthspecified:  {Name: "callout.calloutlengthspecified", Type: TypeUnknown},
	PropCalloutIscallout:               {Name: "callout.iscallout", Type: TypeUnknown},
	PropCalloutCalloutaccentbar:        {Name: "callout.calloutaccentbar", Type: TypeUnknown},
	PropCalloutCallouttextborder:       {Name: "callout.callouttextborder", Type: TypeUnknown},
	PropCalloutCalloutminusx:           {Name: "callout.calloutminusx", Type: TypeUnknown},
	PropCalloutCalloutminusy:           {Name: "callout.calloutminusy", Type: TypeUnknown},
	PropCalloutDropauto:                {Name: "callout.dropauto", Type: TypeUnknown},
	PropCalloutLengthspecified:         {Name: "callout.lengthspecified", Type: TypeUnknown},
	PropGroupShapeShapename:            {Name: "groupshape.shapename", Type: TypeUnknown},
	PropGroupShapeDescription:          {Name: "groupshape.description", Type: TypeUnknown},
	PropGroupShapeHyperlink:            {Name: "groupshape.hyperlink", Type: TypeUnknown},
	PropGroupShapeWrappolygonvertices:  {Name: "groupshape.wrappolygonvertices", Type: TypeArray},
	PropGroupShapeWrapdistleft:         {Name: "groupshape.wrapdistleft", Type: TypeUnknown},
	PropGroupShapeWrapdisttop:          {Name: "groupshape.wrapdisttop", Type: TypeUnknown},
	PropGroupShapeWrapdistright:        {Name: "groupshape.wrapdistright", Type: TypeUnknown},
	PropGroupShapeWrapdistbottom:       {Name: "groupshape.wrapdistbottom", Type: TypeUnknown},
	PropGroupShapeRegroupid:            {Name: "groupshape.regroupid", Type: TypeUnknown},
	PropGroupShapeEditedwrap:           {Name: "groupshape.editedwrap", Type: TypeUnknown},
	PropGroupShapeBehinddocument:       {Name: "groupshape.behinddocument", Type: TypeUnknown},
	PropGroupShapeOndblclicknotify:     {Name: "groupshape.ondblclicknotify", Type: TypeUnknown},
	PropGroupShapeIsbutton:             {Name: "groupshape.isbutton", Type: TypeUnknown},
	PropGroupShape1Dadjustment:         {Name: "groupshape.1dadjustment", Type: TypeUnknown},
	PropGroupShapeHidden:               {Name: "groupshape.hidden", Type: TypeUnknown},
	PropGroupShapePrint:                {Name: "groupshape.print", Type: TypeBool},
}
